package models

import "time"

// RedactedPlaceholder replaces content a viewer is not allowed to see.
const RedactedPlaceholder = "[REDACTED]"

// NoteView is the representation of a note returned to callers. Its shape is
// identical for every viewer; redacted fields carry RedactedPlaceholder
// instead of being omitted.
type NoteView struct {
	ID        string `json:"id"`
	CoachID   string `json:"coach_id"`
	SessionID string `json:"session_id"`
	ClientID  string `json:"client_id,omitempty"`

	Title             string   `json:"title"`
	Content           string   `json:"content"`
	SearchableContent string   `json:"searchable_content"`
	IsEncrypted       bool     `json:"is_encrypted"`
	Tags              []string `json:"tags"`
	Attachments       []string `json:"attachments"`

	AccessLevel  AccessLevel `json:"access_level"`
	AllowSharing bool        `json:"allow_sharing"`
	SharedWith   []string    `json:"shared_with"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	IsEdited       bool       `json:"is_edited"`
	EditedAt       *time.Time `json:"edited_at,omitempty"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`

	AuditTrail []AuditEntry `json:"audit_trail"`

	// Masked is true when content fields were redacted for this viewer.
	Masked bool `json:"masked"`
}
