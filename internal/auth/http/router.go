package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aisleworks/doorkey/internal/auth/domain"
	"github.com/aisleworks/doorkey/internal/auth/service"
	"github.com/aisleworks/doorkey/internal/auth/store"
	"github.com/aisleworks/doorkey/pkg/authsdk"
	"github.com/aisleworks/doorkey/pkg/httpx"
	"github.com/aisleworks/doorkey/pkg/jwtx"
	"github.com/aisleworks/doorkey/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookies      sessionCookies

	store       store.Store
	AuthService *service.AuthService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	cookieSecure bool,
	sessionTTL time.Duration,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		cookies: sessionCookies{
			Name:   SessionCookieName,
			Secure: cookieSecure,
			TTL:    sessionTTL,
		},
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/auth/signup",
		&SignupHandler{AuthService: r.AuthService, Cookies: r.cookies})
	r.Mux.Handle("POST /api/auth/login",
		&LoginHandler{AuthService: r.AuthService, Cookies: r.cookies})
	r.Mux.Handle("POST /api/auth/logout",
		&LogoutHandler{Cookies: r.cookies})
	r.Mux.Handle("POST /api/auth/verifyEmail",
		&VerifyEmailHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/password-recovery",
		&PasswordRecoveryHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /api/auth/reset-password/{token}",
		&ResetPasswordHandler{AuthService: r.AuthService})

	// Authenticated endpoint, session cookie required
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(&MeHandler{AuthService: r.AuthService},
			httpx.SessionAuthn(r.verifier, r.cookies.Name),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

// userPayload strips a user record down to the fields safe for responses.
func userPayload(u domain.User) authsdk.UserPayload {
	return authsdk.UserPayload{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.DisplayName,
		Verified:    u.Verified,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
