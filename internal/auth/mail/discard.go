package mail

import (
	"context"
	"log/slog"
)

// DiscardNotifier logs notifications instead of delivering them. Used when
// no SMTP provider is configured, typically local development.
type DiscardNotifier struct {
	Logger *slog.Logger
}

func (n *DiscardNotifier) Send(_ context.Context, kind Kind, recipient string, p Payload) error {
	n.Logger.Info("discarding notification",
		"kind", string(kind),
		"recipient", recipient,
		"has_code", p.Code != "",
	)
	return nil
}
