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

type SignupHandler struct {
	AuthService *service.AuthService
	Cookies     sessionCookies
}

// ServeHTTP registers a new account, sets the session cookie and kicks off
// the verification email. Every failure uses status 500 so a probe cannot
// distinguish a taken email from a server fault.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	user, token, err := h.AuthService.Signup(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "All fields are required",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "User already exists",
			})
		default:
			log.Error("signup failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	h.Cookies.Set(w, token)
	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		Message: "User created successfully",
		User:    userPayload(user),
	})
}
