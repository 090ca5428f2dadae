package auth_test

import (
	"testing"

	"github.com/aisleworks/doorkey/internal/auth/mail"
	"github.com/aisleworks/doorkey/pkg/authsdk"

	"github.com/stretchr/testify/require"
)

// TestPasswordResetFlow walks the whole recovery path: request the email,
// follow the link, set a new password and confirm the old one is dead.
func TestPasswordResetFlow(t *testing.T) {
	baseURL, notifier := setupAuthServer(t)

	client, err := authsdk.NewSDKClient(baseURL)
	require.NoError(t, err)

	_, err = client.Signup(t.Context(), authsdk.SignupRequest{
		Email:    "forgetful@example.com",
		Password: "old-password",
		Name:     "Forgetful",
	})
	require.NoError(t, err)

	_, err = client.RequestPasswordRecovery(t.Context(), "forgetful@example.com")
	require.NoError(t, err)

	resetEmail := notifier.waitFor(t, mail.KindResetRequest)
	require.Equal(t, "forgetful@example.com", resetEmail.Recipient)
	token := resetTokenFromLink(t, resetEmail.Payload.ResetLink)

	_, err = client.ResetPassword(t.Context(), token, "new-password")
	require.NoError(t, err)

	notifier.waitFor(t, mail.KindResetSuccess)

	// Old password no longer works
	fresh, err := authsdk.NewSDKClient(baseURL)
	require.NoError(t, err)
	_, err = fresh.Login(t.Context(), authsdk.LoginRequest{
		Email:    "forgetful@example.com",
		Password: "old-password",
	})
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	// New password does
	_, err = fresh.Login(t.Context(), authsdk.LoginRequest{
		Email:    "forgetful@example.com",
		Password: "new-password",
	})
	require.NoError(t, err)
}

// TestPasswordResetTokenSingleUse checks that a consumed reset token cannot
// be replayed to change the password again.
func TestPasswordResetTokenSingleUse(t *testing.T) {
	baseURL, notifier := setupAuthServer(t)

	client, err := authsdk.NewSDKClient(baseURL)
	require.NoError(t, err)

	_, err = client.Signup(t.Context(), authsdk.SignupRequest{
		Email:    "replay@example.com",
		Password: "password123",
		Name:     "Replay",
	})
	require.NoError(t, err)

	_, err = client.RequestPasswordRecovery(t.Context(), "replay@example.com")
	require.NoError(t, err)

	token := resetTokenFromLink(t, notifier.waitFor(t, mail.KindResetRequest).Payload.ResetLink)

	_, err = client.ResetPassword(t.Context(), token, "first-new-password")
	require.NoError(t, err)

	_, err = client.ResetPassword(t.Context(), token, "second-new-password")

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "Invalid or expired reset token", apiErr.Message)

	// The replay attempt must not have touched the password
	fresh, err := authsdk.NewSDKClient(baseURL)
	require.NoError(t, err)
	_, err = fresh.Login(t.Context(), authsdk.LoginRequest{
		Email:    "replay@example.com",
		Password: "first-new-password",
	})
	require.NoError(t, err)
}

func TestPasswordRecoveryUnknownEmail(t *testing.T) {
	baseURL, _ := setupAuthServer(t)

	client, err := authsdk.NewSDKClient(baseURL)
	require.NoError(t, err)

	_, err = client.RequestPasswordRecovery(t.Context(), "nobody@example.com")

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "Email not found", apiErr.Message)
}

func TestResetPasswordRequiresPassword(t *testing.T) {
	baseURL, notifier := setupAuthServer(t)

	client, err := authsdk.NewSDKClient(baseURL)
	require.NoError(t, err)

	_, err = client.Signup(t.Context(), authsdk.SignupRequest{
		Email:    "empty@example.com",
		Password: "password123",
		Name:     "Empty",
	})
	require.NoError(t, err)

	_, err = client.RequestPasswordRecovery(t.Context(), "empty@example.com")
	require.NoError(t, err)

	token := resetTokenFromLink(t, notifier.waitFor(t, mail.KindResetRequest).Payload.ResetLink)

	_, err = client.ResetPassword(t.Context(), token, "")

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "Password is required", apiErr.Message)
}
