// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by request decoding and the authentication
// middleware. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoActorInContext is returned when a protected handler runs without
	// the actor the auth middleware stores.
	ErrNoActorInContext = errors.New("no actor in request context")

	ErrInvalidJSON       = errors.New("invalid JSON body")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
