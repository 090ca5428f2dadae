package domain

import "time"

// User is the credential record. The token-hash fields and their expiries
// move in pairs: both set while a code is pending, both nil otherwise.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string // argon2id PHC encoded
	Verified     bool

	VerificationTokenHash *string // SHA-256 fingerprint of the emailed code
	VerificationExpiresAt *time.Time

	ResetTokenHash *string // SHA-256 fingerprint of the emailed reset token
	ResetExpiresAt *time.Time

	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
