package mail

import "context"

// Kind names the notification being delivered.
type Kind string

const (
	KindVerify       Kind = "verify"
	KindWelcome      Kind = "welcome"
	KindResetRequest Kind = "reset-request"
	KindResetSuccess Kind = "reset-success"
)

// Payload carries the per-message fields a template can use. Code is the raw
// single-use token for verify messages; ResetLink is the full URL embedding
// the reset token.
type Payload struct {
	DisplayName string
	Code        string
	ResetLink   string
}

// Notifier delivers a notification to a recipient. Implementations must be
// safe for concurrent use; the auth service calls Send from request
// goroutines and from fire-and-forget workers.
type Notifier interface {
	Send(ctx context.Context, kind Kind, recipient string, p Payload) error
}
