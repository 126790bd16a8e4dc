package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the same way withTraceID attaches it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:5555"
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		body     string
		contains []string
	}{
		{
			name:   "GET note",
			method: http.MethodGet,
			path:   "/api/notes/n1",
			status: http.StatusOK,
			body:   `{"id":"n1"}`,
			contains: []string{
				`"method":"GET"`,
				`"uri":"/api/notes/n1"`,
				`"status":200`,
				`"size":11`,
				`"remote_ip":"10.0.0.1"`,
				`"duration":`,
				`"level":"info"`,
			},
		},
		{
			name:     "DELETE no content",
			method:   http.MethodDelete,
			path:     "/api/notes/n1",
			status:   http.StatusNoContent,
			contains: []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
		},
		{
			name:     "forbidden with query string",
			method:   http.MethodGet,
			path:     "/api/notes/search?query=goals",
			status:   http.StatusForbidden,
			body:     `{"error":"not authorized"}`,
			contains: []string{`"uri":"/api/notes/search?query=goals"`, `"status":403`, `"level":"warn"`},
		},
		{
			name:     "internal error",
			method:   http.MethodPost,
			path:     "/api/notes",
			status:   http.StatusInternalServerError,
			body:     `{"error":"Internal Server Error"}`,
			contains: []string{`"status":500`, `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/api/version", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	r := chi.NewRouter()
	r.Use(h.withLogging)
	r.Get("/api/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, makeRequest(http.MethodGet, "/api/notes/0192f0c4-note", &buf))

	assert.Contains(t, buf.String(), `"route":"/api/notes/{id}"`)
	assert.Contains(t, buf.String(), `"uri":"/api/notes/0192f0c4-note"`)
}
