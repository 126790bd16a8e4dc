// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT verification
// and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-coach-notes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the authenticated actor in the
// context. Use WithActor and GetActorFromContext instead of accessing it
// directly.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// GetActorFromContext retrieves the actor stored by WithActor.
//
// ok is false when no actor is stored or the stored actor has no id.
//
// Example usage:
//
//	actor, ok := utils.GetActorFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(models.Actor)
	if !ok || actor.ID == "" {
		return models.Actor{}, false
	}
	return actor, true
}
