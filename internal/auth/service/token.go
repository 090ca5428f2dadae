package service

import (
	"time"

	"github.com/aisleworks/doorkey/internal/auth/domain"
	"github.com/aisleworks/doorkey/pkg/cryptox"
	"github.com/aisleworks/doorkey/pkg/jwtx"
)

// Validity windows for single-use codes.
const (
	DefaultVerificationTTL = 10 * time.Minute
	DefaultResetTTL        = 1 * time.Hour
)

// TokenService is the token issuer: opaque single-use codes for email
// verification and password reset, and signed session tokens that are
// verifiable without a database round trip.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Issuer     string
	SessionTTL time.Duration
}

// NewCode mints a crypto-random single-use code valid for ttl. The raw code
// goes out by email; only the fingerprint is handed to the store.
func (s *TokenService) NewCode(ttl time.Duration) (code, fingerprint string, expiresAt time.Time, err error) {
	code, err = cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return code, cryptox.FingerprintToken(code), time.Now().UTC().Add(ttl), nil
}

// MintSession issues a signed session token bound to the user identity.
func (s *TokenService) MintSession(u domain.User) (token string, expiresAt time.Time, err error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(u.ID, u.Email, u.DisplayName, s.Issuer, ttl, now)

	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, now.Add(ttl), nil
}

// VerifySession validates a session token and returns its claims.
func (s *TokenService) VerifySession(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}
