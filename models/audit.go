// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditAction is the kind of an audit trail entry. The set is closed.
type AuditAction string

const (
	AuditCreated      AuditAction = "created"
	AuditViewed       AuditAction = "viewed"
	AuditUpdated      AuditAction = "updated"
	AuditDeleted      AuditAction = "deleted"
	AuditShared       AuditAction = "shared"
	AuditUnshared     AuditAction = "unshared"
	AuditAccessDenied AuditAction = "access_denied"
)

// IsValid reports whether a is one of the closed set of audit actions.
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditCreated, AuditViewed, AuditUpdated, AuditDeleted,
		AuditShared, AuditUnshared, AuditAccessDenied:
		return true
	}
	return false
}

// Keys used in AuditEntry.Details.
const (
	AuditDetailAction        = "action"
	AuditDetailReason        = "reason"
	AuditDetailChangedFields = "changed_fields"
	AuditDetailUserIDs       = "user_ids"
	AuditDetailSessionID     = "session_id"
	AuditDetailError         = "error"
)

// AuditEntry is a single immutable record of the audit trail of a note.
//
// Entries are insert-only. NoteID may be empty for denied create attempts,
// which cannot be attributed to a note yet; the session id is stored in
// Details instead.
type AuditEntry struct {
	// ID is the storage-assigned sequence number. Higher is newer.
	ID int64 `json:"id"`

	NoteID    string         `json:"note_id"`
	Action    AuditAction    `json:"action"`
	ActorID   string         `json:"actor_id"`
	ActorRole Role           `json:"actor_role"`
	IP        string         `json:"ip,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewAuditEntry builds an entry for the given note, action and actor.
func NewAuditEntry(noteID string, action AuditAction, actor Actor, details map[string]any) AuditEntry {
	return AuditEntry{
		NoteID:    noteID,
		Action:    action,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
		Details:   details,
	}
}
