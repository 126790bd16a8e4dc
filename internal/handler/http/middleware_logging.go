package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level and client errors at warn. "route" is the matched
// chi pattern (e.g. /api/notes/{id}), which stays stable across note ids.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			// net/http sends 200 for a handler that writes nothing
			status = http.StatusOK
		}

		accessEvent(log, status).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Str("method", r.Method).
			Str("remote_ip", remoteIP(r.RemoteAddr)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
