package http

import (
	"net/http"
	"time"

	"github.com/aisleworks/doorkey/pkg/authsdk"
	"github.com/aisleworks/doorkey/pkg/httpx"
)

// LivezHandler answers the liveness probe. It returns 200 whenever the
// process is up, regardless of dependency health.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := authsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
