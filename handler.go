package pulse

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler returns an http.HandlerFunc serving the full report: every
// registered check's outcome, 200 while the service is healthy or degraded,
// 503 when unhealthy.
func Handler(c *Checker) http.HandlerFunc {
	return reportHandler(c, FilterAll)
}

// LivenessHandler returns an http.HandlerFunc serving liveness-participating
// checks only. Use for supervisor restart probes: 200 when healthy, 503
// otherwise.
func LivenessHandler(c *Checker) http.HandlerFunc {
	return reportHandler(c, FilterLiveness)
}

// ReadinessHandler returns an http.HandlerFunc serving
// readiness-participating checks only. Use for traffic admission probes:
// 200 while healthy or degraded (lenient policy), 503 when unhealthy
// (always under the strict policy, since it upgrades readiness failures).
func ReadinessHandler(c *Checker) http.HandlerFunc {
	return reportHandler(c, FilterReadiness)
}

// Routes mounts the three report endpoints on a chi router:
//
//	GET /       full report
//	GET /live   liveness-only
//	GET /ready  readiness-only
//
// All three share the same frozen checker.
//
//	r.Mount("/health", pulse.Routes(checker))
func Routes(c *Checker) http.Handler {
	r := chi.NewRouter()
	r.Get("/", Handler(c))
	r.Get("/live", LivenessHandler(c))
	r.Get("/ready", ReadinessHandler(c))
	return r
}

func reportHandler(c *Checker, filter Filter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := c.Run(r.Context(), filter)

		status := http.StatusOK
		if report.Overall == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		// Structured body by default; bare probes (curl -f, load balancer
		// string matching) can opt into plain text.
		if wantsPlainText(r) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(status)
			if status == http.StatusOK {
				_, _ = w.Write([]byte("OK"))
			} else {
				_, _ = w.Write([]byte("Service Unavailable"))
			}
			return
		}

		writeJSON(w, status, report)
	}
}

// wantsPlainText checks if the client asked for a plain text response.
func wantsPlainText(r *http.Request) bool {
	if r.URL.Query().Get("format") == "text" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain")
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
