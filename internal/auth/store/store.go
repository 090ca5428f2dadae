package store

import (
	"context"
	"errors"
	"time"

	"github.com/aisleworks/doorkey/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and the
// storage engine swappable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and password recovery. Emails are
	// compared byte-wise; no normalisation happens at this layer.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken, so uniqueness rides
	// on the index rather than a check-then-insert.
	CreateUser(ctx context.Context, u domain.User) error

	// RecordLogin stamps last_login_at and bumps updated_at.
	RecordLogin(ctx context.Context, userID string, at time.Time) error

	// SetResetToken installs a reset token fingerprint and expiry,
	// overwriting any pending one. Previous reset links become invalid.
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// ConsumeVerificationToken atomically marks the matching user verified
	// and clears the verification pair, provided the fingerprint matches and
	// the expiry is strictly in the future. The conditional update is a
	// single statement so two racing consumers get exactly one success.
	// Returns ErrNotFound when no row matches (unknown, expired or already
	// consumed look identical).
	ConsumeVerificationToken(ctx context.Context, tokenHash string, now time.Time) (domain.User, error)

	// ConsumeResetToken atomically overwrites the password hash and clears
	// the reset pair under the same single-statement condition as
	// ConsumeVerificationToken.
	ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (domain.User, error)

	// ClearExpiredTokens nulls out verification/reset pairs whose expiry has
	// passed. Housekeeping; consumption never depends on it.
	ClearExpiredTokens(ctx context.Context, now time.Time) error
}
