package authsdk

import "time"

// ============================================================================
// Request Types
// ============================================================================

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	// Email is the address the verification code is sent to. Unique.
	Email string `json:"email"`

	// Password is the plaintext password. It is hashed server-side and
	// never stored or echoed back.
	Password string `json:"password"`

	// Name is the display name shown in emails and profile responses.
	Name string `json:"name"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyEmailRequest is the payload for POST /api/auth/verifyEmail.
type VerifyEmailRequest struct {
	// Code is the single-use verification code from the signup email.
	Code string `json:"code"`
}

// PasswordRecoveryRequest is the payload for POST /api/auth/password-recovery.
type PasswordRecoveryRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload for POST /api/auth/reset-password/{token}.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ============================================================================
// Response Types
// ============================================================================

// ErrorResponse is the error body returned by every failing endpoint.
type ErrorResponse struct {
	// Message is a human-readable description of the failure
	Message string `json:"message"`
}

// MessageResponse is the body of endpoints that return only a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserPayload is the sanitized user record returned by the service.
// It never contains the password hash or any token material.
type UserPayload struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Verified    bool       `json:"verified"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AuthResponse is returned by signup and login. The session token itself
// travels in the "session" cookie, not in the body.
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User UserPayload `json:"user"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the health check response from /livez and /readyz.
type HealthResponse struct {
	// Status is "ok" when healthy, "degraded" when any check fails
	Status string `json:"status"`

	// Uptime is a human-readable duration since service start
	Uptime string `json:"uptime"`

	// Version is the service build version
	Version string `json:"version"`

	// Checks holds per-dependency status (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks holds the status of individual service dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
