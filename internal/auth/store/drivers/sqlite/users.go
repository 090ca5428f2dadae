package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aisleworks/doorkey/internal/auth/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, email, display_name, password_hash, verified,
	verification_token_hash, verification_expires_at,
	reset_token_hash, reset_expires_at,
	last_login_at, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, display_name, password_hash, verified,
			verification_token_hash, verification_expires_at,
			reset_token_hash, reset_expires_at,
			last_login_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, u.Verified,
		mapOptionalString(u.VerificationTokenHash), mapOptionalTime(u.VerificationExpiresAt),
		mapOptionalString(u.ResetTokenHash), mapOptionalTime(u.ResetExpiresAt),
		mapOptionalTime(u.LastLoginAt), now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET last_login_at = ?, updated_at = ? WHERE id = ?`,
		at.UTC(), time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET reset_token_hash = ?, reset_expires_at = ?, updated_at = ?
		WHERE id = ?`,
		tokenHash, expiresAt.UTC(), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ConsumeVerificationToken flips verified and clears the token pair in one
// conditional update. Matching on the fingerprint AND a strictly-future
// expiry inside the statement is what makes consumption at-most-once.
func (r *usersRepo) ConsumeVerificationToken(ctx context.Context, tokenHash string, now time.Time) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET verified = 1,
		    verification_token_hash = NULL,
		    verification_expires_at = NULL,
		    updated_at = ?
		WHERE verification_token_hash = ?
		  AND verification_expires_at > ?
		RETURNING `+userColumns,
		time.Now().UTC(), tokenHash, now.UTC())
	return scanUser(row)
}

// ConsumeResetToken swaps in the new password hash and clears the reset pair
// under the same single-statement condition.
func (r *usersRepo) ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET password_hash = ?,
		    reset_token_hash = NULL,
		    reset_expires_at = NULL,
		    updated_at = ?
		WHERE reset_token_hash = ?
		  AND reset_expires_at > ?
		RETURNING `+userColumns,
		newPasswordHash, time.Now().UTC(), tokenHash, now.UTC())
	return scanUser(row)
}

func (r *usersRepo) ClearExpiredTokens(ctx context.Context, now time.Time) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET verification_token_hash = NULL, verification_expires_at = NULL
		WHERE verification_expires_at IS NOT NULL AND verification_expires_at <= ?`,
		now.UTC()); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET reset_token_hash = NULL, reset_expires_at = NULL
		WHERE reset_expires_at IS NOT NULL AND reset_expires_at <= ?`,
		now.UTC())
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                 domain.User
		verificationToken sql.NullString
		verificationExp   sql.NullTime
		resetToken        sql.NullString
		resetExp          sql.NullTime
		lastLogin         sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Verified,
		&verificationToken, &verificationExp,
		&resetToken, &resetExp,
		&lastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.VerificationTokenHash = mapNullStringPtr(verificationToken)
	u.VerificationExpiresAt = mapNullTimePtr(verificationExp)
	u.ResetTokenHash = mapNullStringPtr(resetToken)
	u.ResetExpiresAt = mapNullTimePtr(resetExp)
	u.LastLoginAt = mapNullTimePtr(lastLogin)
	return u, nil
}
