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

type VerifyEmailHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP redeems a single-use verification code. Unknown, expired and
// already-consumed codes all answer the same 400.
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	if _, err := h.AuthService.VerifyEmail(ctx, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
				Message: "Invalid or expired verification code",
			})
		default:
			log.Error("email verification failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Email verified successfully",
	})
}
