package http

import (
	"errors"
	"net/http"

	"github.com/aisleworks/doorkey/internal/auth/service"
	"github.com/aisleworks/doorkey/internal/auth/store"
	"github.com/aisleworks/doorkey/pkg/authsdk"
	"github.com/aisleworks/doorkey/pkg/httpx"
	"github.com/aisleworks/doorkey/pkg/slogx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the profile behind the session cookie. Runs behind
// SessionAuthn, so the context always carries a verified user id. A session
// for a deleted user is treated as unauthorized, not as missing data.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	user, err := h.AuthService.Me(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusUnauthorized, authsdk.ErrorResponse{
				Message: "Unauthorized",
			})
		default:
			log.Error("failed to load user profile", "err", err, "user_id", userID)
			httpx.WriteJSON(w, http.StatusInternalServerError, authsdk.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{
		User: userPayload(user),
	})
}
