package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// protectedRoutes lists every route Init registers behind the auth middleware.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodPost, "/api/notes"},
	{http.MethodGet, "/api/notes/search"},
	{http.MethodGet, "/api/notes/suggest"},
	{http.MethodGet, "/api/notes/tags/popular"},
	{http.MethodGet, "/api/notes/n1"},
	{http.MethodPatch, "/api/notes/n1"},
	{http.MethodDelete, "/api/notes/n1"},
	{http.MethodPost, "/api/notes/n1/share"},
	{http.MethodPost, "/api/notes/n1/unshare"},
	{http.MethodGet, "/api/notes/n1/audit"},
	{http.MethodGet, "/api/sessions/s1/notes"},
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	for _, rt := range protectedRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := env.do(t, rt.method, rt.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_UnknownRoutesReturn404(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/api", "/api/notes/n1/history", "/api/users"} {
		t.Run(path, func(t *testing.T) {
			rr := env.do(t, http.MethodGet, path, nil, &coach)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/notes/n1"},
		{http.MethodGet, "/api/notes/n1/share"},
		{http.MethodDelete, "/api/notes"},
		{http.MethodPost, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := env.do(t, tt.method, tt.path, nil, &coach)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/unknown", nil, nil)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
