package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aisleworks/doorkey/internal/auth/domain"
	"github.com/aisleworks/doorkey/internal/auth/mail"
	"github.com/aisleworks/doorkey/internal/auth/store"
	"github.com/aisleworks/doorkey/pkg/cryptox"
	"github.com/aisleworks/doorkey/pkg/idx"
	"github.com/aisleworks/doorkey/pkg/slogx"
)

// DefaultNotifyTimeout bounds outbound notification sends so a slow mail
// provider cannot pin goroutines indefinitely.
const DefaultNotifyTimeout = 15 * time.Second

// AuthService implements signup, login, email verification and the password
// reset flow as state transitions over the credential store.
type AuthService struct {
	Store    store.Store
	Tokens   *TokenService
	Notifier mail.Notifier

	// BaseURL of the web client, used to build reset links.
	BaseURL string

	VerificationTTL time.Duration
	ResetTTL        time.Duration
	NotifyTimeout   time.Duration
}

// Signup creates an unverified credential record, issues a session token and
// emails a verification code. The verification email is fire-and-forget; a
// delivery failure is logged but does not fail the signup.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (domain.User, string, error) {
	if email == "" || password == "" || name == "" {
		return domain.User{}, "", ErrValidation
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	code, fingerprint, expiresAt, err := s.Tokens.NewCode(s.verificationTTL())
	if err != nil {
		return domain.User{}, "", fmt.Errorf("generate verification code: %w", err)
	}

	user := domain.User{
		ID:                    idx.New().String(),
		Email:                 email,
		DisplayName:           name,
		PasswordHash:          hash,
		Verified:              false,
		VerificationTokenHash: &fingerprint,
		VerificationExpiresAt: &expiresAt,
	}

	// Uniqueness rides on the store's email index; no check-then-insert.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.Tokens.MintSession(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("mint session: %w", err)
	}

	s.notifyAsync(ctx, mail.KindVerify, user.Email, mail.Payload{
		DisplayName: user.DisplayName,
		Code:        code,
	})

	return user, token, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password produce the identical ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("fetch user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, _, err := s.Tokens.MintSession(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("mint session: %w", err)
	}

	now := time.Now().UTC()
	if err := s.Store.Users().RecordLogin(ctx, user.ID, now); err != nil {
		return domain.User{}, "", fmt.Errorf("record login: %w", err)
	}
	user.LastLoginAt = &now

	return user, token, nil
}

// VerifyEmail consumes a verification code. Consumption is atomic in the
// store, so a code is accepted at most once; resubmission fails with
// ErrInvalidToken. A welcome email goes out fire-and-forget on success.
func (s *AuthService) VerifyEmail(ctx context.Context, code string) (domain.User, error) {
	if code == "" {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().ConsumeVerificationToken(ctx, cryptox.FingerprintToken(code), time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, fmt.Errorf("consume verification token: %w", err)
	}

	s.notifyAsync(ctx, mail.KindWelcome, user.Email, mail.Payload{
		DisplayName: user.DisplayName,
	})

	return user, nil
}

// ForgotPassword installs a fresh reset token, invalidating any pending one,
// and emails a reset link. Unlike the other flows the notification gates the
// result: the caller needs to know the email was actually dispatched.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrValidation
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmailNotFound
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	token, fingerprint, expiresAt, err := s.Tokens.NewCode(s.resetTTL())
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.Store.Users().SetResetToken(ctx, user.ID, fingerprint, expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := strings.TrimRight(s.BaseURL, "/") + "/reset-password/" + token
	if err := s.Notifier.Send(ctx, mail.KindResetRequest, user.Email, mail.Payload{
		DisplayName: user.DisplayName,
		ResetLink:   link,
	}); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token and overwrites the password hash in
// the same atomic step, so two racing resets succeed exactly once.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidToken
	}
	if newPassword == "" {
		return ErrValidation
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Store.Users().ConsumeResetToken(ctx, cryptox.FingerprintToken(token), hash, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("consume reset token: %w", err)
	}

	s.notifyAsync(ctx, mail.KindResetSuccess, user.Email, mail.Payload{
		DisplayName: user.DisplayName,
	})

	return nil
}

// Me returns the credential record for an authenticated session.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// notifyAsync dispatches a notification without blocking the request. The
// send runs on a detached context so it survives the response being written;
// failures are logged, never surfaced.
func (s *AuthService) notifyAsync(ctx context.Context, kind mail.Kind, recipient string, p mail.Payload) {
	log := slogx.FromContext(ctx)
	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.Notifier.Send(sendCtx, kind, recipient, p); err != nil {
			log.Error("notification delivery failed",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
	}()
}

func (s *AuthService) verificationTTL() time.Duration {
	if s.VerificationTTL > 0 {
		return s.VerificationTTL
	}
	return DefaultVerificationTTL
}

func (s *AuthService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return DefaultResetTTL
}
