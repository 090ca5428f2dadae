package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aisleworks/doorkey/internal/auth/service"
	"github.com/aisleworks/doorkey/pkg/authsdk"
	"github.com/aisleworks/doorkey/pkg/httpx"
	"github.com/aisleworks/doorkey/pkg/slogx"
)

type ResetPasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP consumes the reset token from the URL path and sets the new
// password. A token that was already used, expired or never issued gets the
// same 400.
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.PathValue("token")

	var req authsdk.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	if err := h.AuthService.ResetPassword(ctx, token, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
				Message: "Password is required",
			})
		case errors.Is(err, service.ErrInvalidToken):
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
				Message: "Invalid or expired reset token",
			})
		default:
			log.Error("password reset failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Password reset successfully",
	})
}
