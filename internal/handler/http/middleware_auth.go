package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// with the configured sign key and issuer, and stores the resulting
// [models.Actor] in the request context via [utils.WithActor]. The actor's IP
// comes from the remote address (already rewritten by chi's RealIP from
// X-Real-IP / X-Forwarded-For) and its user agent from the request.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent,
// malformed, or the token does not verify.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		actor, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		actor.IP = remoteIP(r.RemoteAddr)
		actor.UserAgent = r.UserAgent()

		l := log.ForActor(actor.ID, string(actor.Role))

		ctx := utils.WithActor(l.WithContext(r.Context()), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// remoteIP strips the port of addr when it has one.
func remoteIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
