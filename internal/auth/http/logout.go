package http

import (
	"net/http"

	"github.com/aisleworks/doorkey/pkg/authsdk"
	"github.com/aisleworks/doorkey/pkg/httpx"
)

type LogoutHandler struct {
	Cookies sessionCookies
}

// ServeHTTP clears the session cookie. Sessions are stateless signed tokens,
// so there is nothing to revoke server-side and the call always succeeds.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Cookies.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{
		Message: "Logged out successfully",
	})
}
