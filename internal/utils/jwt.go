package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-coach-notes/models"
)

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidTokenClaims   = errors.New("invalid token claims")
	ErrInvalidBearerHeader  = errors.New("invalid bearer authorization header")
	ErrInvalidTokenSettings = errors.New("invalid params for generating JWT Token")
)

// ActorClaims are the claims of the bearer tokens accepted by the server.
// The subject (sub) is the actor id.
type ActorClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for actor.
//
// Tokens are issued by the identity part of the product; this helper exists
// for tests and local tooling.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("coach-notes", actor, time.Hour, "secret")
func GenerateJWTToken(issuer string, actor models.Actor, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || actor.ID == "" {
		return "", ErrInvalidTokenSettings
	}

	now := time.Now()
	claims := &ActorClaims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and returns
// the actor it identifies.
//
// Validation includes:
//   - Signature verification with HS256 and the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//   - Role claim being one of the known roles
//
// The returned actor carries no IP or user agent; the transport fills them.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Actor, error) {
	claims := &ActorClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.Actor{}, fmt.Errorf("%w: empty subject", ErrInvalidTokenClaims)
	}
	if !claims.Role.IsValid() {
		return models.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidTokenClaims, claims.Role)
	}

	return models.Actor{ID: claims.Subject, Role: claims.Role}, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidBearerHeader
	}
	return token, nil
}
