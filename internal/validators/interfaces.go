// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of note service requests before any
// store, policy or audit work is done: required ids and content, closed
// enums (access level, sort field and order), tag and title limits, the
// sharing gate on create and paging bounds on search.
//
// Validators only look at the request itself. Whether the actor may act on
// a note is decided later by the access policy.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// checks run (see the Field* constants); otherwise every check applicable
// to the value's type runs.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
