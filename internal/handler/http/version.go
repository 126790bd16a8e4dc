package http

import (
	"io"
	"net/http"
)

// getServerVersion answers GET /api/version with the bare version string.
// It is the only route that needs no bearer token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = io.WriteString(w, version)
}
