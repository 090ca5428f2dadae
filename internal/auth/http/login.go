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

type LoginHandler struct {
	AuthService *service.AuthService
	Cookies     sessionCookies
}

// ServeHTTP authenticates with email and password and sets the session
// cookie. Unknown email and wrong password both produce the same response.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusBadRequest, authsdk.ErrorResponse{
				Message: "Invalid credentials",
			})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	h.Cookies.Set(w, token)
	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		Message: "Logged in successfully",
		User:    userPayload(user),
	})
}
