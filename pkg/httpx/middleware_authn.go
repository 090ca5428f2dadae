package httpx

import (
	"context"
	"net/http"

	"github.com/aisleworks/doorkey/pkg/jwtx"
	"github.com/aisleworks/doorkey/pkg/slogx"
)

// SessionAuthn authenticates requests via the named session cookie. Requests
// without a valid session get a 401 with a generic message; verification
// detail is only logged.
func SessionAuthn(v jwtx.Verifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				writeSessionError(w)
				return
			}

			claims, err := v.Verify(cookie.Value)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeSessionError(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeSessionError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"message": "Unauthorized",
	})
}
