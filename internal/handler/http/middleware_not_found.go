// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/utils"
)

// notFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router. An unsupported method on a known path answers 404,
// like an unknown path, so callers cannot probe which routes exist.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.notFound").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route")

	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
