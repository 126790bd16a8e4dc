// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy decides who may do what with a coach note.
//
// Decisions come from a closed table indexed by the relation of the actor to
// the note (owner, admin, viewer, other) and the attempted action (view,
// edit, delete, share, unshare). Share and unshare are additionally gated by
// the note's AllowSharing flag. A denial is a value, never an error: callers
// record it in the audit trail and surface the matching service error.
package policy
