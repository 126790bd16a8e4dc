// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessLevel is the declared visibility tier of a note.
//
// The tier is metadata used for filtering and display; who may actually read
// a note is decided by the access policy (ownership, admin role and the
// explicit SharedWith list).
type AccessLevel string

const (
	// AccessPrivate marks a note intended for its owning coach only.
	AccessPrivate AccessLevel = "private"
	// AccessShared marks a note shared with the users listed in SharedWith.
	AccessShared AccessLevel = "shared"
	// AccessTeam marks a note declared visible to the coach's team.
	AccessTeam AccessLevel = "team"
)

// AccessLevels lists every supported access level.
var AccessLevels = []AccessLevel{AccessPrivate, AccessShared, AccessTeam}

// IsValid reports whether l is one of the supported access levels.
func (l AccessLevel) IsValid() bool {
	for _, level := range AccessLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Privacy groups the sharing settings of a note.
type Privacy struct {
	// AccessLevel is the declared visibility tier.
	AccessLevel AccessLevel `json:"access_level"`

	// AllowSharing gates every share and unshare operation. SharedWith may
	// only be non-empty while AllowSharing is true.
	AllowSharing bool `json:"allow_sharing"`

	// SharedWith holds the ids of users explicitly granted view access.
	SharedWith []string `json:"shared_with"`
}

// IsSharedWith reports whether userID is present in SharedWith.
func (p Privacy) IsSharedWith(userID string) bool {
	for _, id := range p.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// Note is a coach's record about a coaching session.
//
// Content always holds the plaintext body inside the service layer. When
// IsEncrypted is true the persisted body is ciphertext and the store layer
// returns it in Content until the service decrypts it.
type Note struct {
	ID        string `json:"id"`
	CoachID   string `json:"coach_id"`
	SessionID string `json:"session_id"`
	ClientID  string `json:"client_id,omitempty"`

	Title       string   `json:"title"`
	Content     string   `json:"content"`
	IsEncrypted bool     `json:"is_encrypted"`
	Tags        []string `json:"tags"`
	Attachments []string `json:"attachments"`

	Privacy Privacy `json:"privacy"`

	// SearchableContent is the normalized token projection of title, body
	// and tags. Recomputed on every content-affecting write.
	SearchableContent string `json:"searchable_content"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	EditedAt       *time.Time `json:"edited_at,omitempty"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
}

// IsEdited reports whether the note was updated after creation.
func (n Note) IsEdited() bool {
	return n.EditedAt != nil
}

// Clone returns a deep copy of n so callers can mutate slices freely.
func (n Note) Clone() Note {
	c := n
	c.Tags = append([]string(nil), n.Tags...)
	c.Attachments = append([]string(nil), n.Attachments...)
	c.Privacy.SharedWith = append([]string(nil), n.Privacy.SharedWith...)
	if n.EditedAt != nil {
		t := *n.EditedAt
		c.EditedAt = &t
	}
	if n.LastAccessedAt != nil {
		t := *n.LastAccessedAt
		c.LastAccessedAt = &t
	}
	return c
}

// NoteListFilter narrows a store listing. Empty fields do not filter.
type NoteListFilter struct {
	CoachID   string
	SessionID string
}

// Session is the scheduling record a note is attached to. Sessions are owned
// by the scheduling part of the product and are read-only here.
type Session struct {
	ID       string `json:"id"`
	CoachID  string `json:"coach_id"`
	ClientID string `json:"client_id,omitempty"`
}
