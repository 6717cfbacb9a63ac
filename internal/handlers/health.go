package handlers

import (
	"net/http"

	"boxpro/internal/logger"
	"boxpro/middleware"
)

// HealthCheck reports process liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		requestID := middleware.GetRequestID(r.Context())
		logger.HTTPError(r.Method, r.URL.Path, http.StatusInternalServerError, err).
			Str("request_id", requestID).
			Msg("failed to write health response")
	}
}

// ReadinessCheck reports readiness to serve. The site degrades to
// placeholder content without a backend, so readiness does not depend on
// backend connectivity.
func ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logger.HTTPEvent(r.Method, r.URL.Path, http.StatusOK, 0).
		Str("request_id", requestID).
		Msg("readiness check")
	w.WriteHeader(http.StatusOK)
}
