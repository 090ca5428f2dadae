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

type PasswordRecoveryHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP emails a single-use password reset link. The send is synchronous;
// success here means the reset email was actually handed off.
func (h *PasswordRecoveryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.PasswordRecoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	if err := h.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
				Message: "Email not found",
			})
		case errors.Is(err, service.ErrValidation):
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
				Message: "Email is required",
			})
		default:
			log.Error("password recovery failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Password recovery email sent",
	})
}
