package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/utils"
	"github.com/MKhiriev/go-coach-notes/models"
)

func executeAuth(t *testing.T, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{tokens: testAppCfg, logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/api/notes/n1", nil)
	req.RemoteAddr = "192.0.2.10:41000"
	req.Header.Set("User-Agent", "notes-cli/0.1")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func mustToken(t *testing.T, issuer string, actor models.Actor, d time.Duration, key string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(issuer, actor, d, key)
	require.NoError(t, err)
	return token
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "no token", header: "Bearer"},
		{name: "wrong scheme", header: "Basic " + mustToken(t, testIssuer, coach, time.Hour, testSignKey)},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrong sign key", header: "Bearer " + mustToken(t, testIssuer, coach, time.Hour, "other-key")},
		{name: "wrong issuer", header: "Bearer " + mustToken(t, "someone-else", coach, time.Hour, testSignKey)},
		{name: "expired", header: "Bearer " + mustToken(t, testIssuer, coach, -time.Minute, testSignKey)},
		{name: "unknown role", header: "Bearer " + mustToken(t, testIssuer, models.Actor{ID: "x", Role: "root"}, time.Hour, testSignKey)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			rr := executeAuth(t, tt.header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.False(t, called)
		})
	}
}

func TestAuth_StoresActorInContext(t *testing.T) {
	var got models.Actor
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(t, "Bearer "+mustToken(t, testIssuer, admin, time.Hour, testSignKey), next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ok)
	assert.Equal(t, models.Actor{ID: "admin-a", Role: models.RoleAdmin, IP: "192.0.2.10", UserAgent: "notes-cli/0.1"}, got)
}

func TestAuth_IPFromRealIPHeader(t *testing.T) {
	h := &Handler{tokens: testAppCfg, logger: logger.Nop()}

	var got models.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetActorFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes/n1", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, testIssuer, coach, time.Hour, testSignKey))
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")

	middleware.RealIP(h.auth(next)).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", got.IP)
}

func TestRemoteIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", remoteIP("10.0.0.1:8080"))
	assert.Equal(t, "10.0.0.1", remoteIP("10.0.0.1"))
	assert.Equal(t, "::1", remoteIP("[::1]:443"))
}
