package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

// Check reports whether a dependency is reachable.
type Check func(context.Context) error

// HealthCheckHandler serves liveness and readiness probes.
//
// With no checks it always answers 200 {"status":"alive"}. Otherwise every
// named check runs with the request context; the response is 200 when all of
// them pass and 503 when any fails, with the per-check result in the body.
func HealthCheckHandler(log *slog.Logger, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		type response struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks,omitempty"`
		}

		resp := response{Status: "alive"}
		code := http.StatusOK

		if len(checks) > 0 {
			resp.Status = "ready"
			resp.Checks = make(map[string]string, len(checks))
			for name, check := range checks {
				if err := check(r.Context()); err != nil {
					log.ErrorContext(r.Context(), "readiness check failed",
						logger.Component(name),
						logger.Error(err),
					)
					resp.Checks[name] = "fail"
					resp.Status = "not_ready"
					code = http.StatusServiceUnavailable
					continue
				}
				resp.Checks[name] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
