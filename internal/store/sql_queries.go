package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coach-notes/models"
)

const (
	notesTable  = "notes"
	sharesTable = "note_shares"
	auditTable  = "note_audit"

	sessionsTable = "sessions"
)

// auditPageCapacity is the initial capacity of audit result slices. The
// requested limit is not used, it comes from the caller.
const auditPageCapacity = 16

var noteColumns = []string{
	"id",
	"coach_id",
	"session_id",
	"client_id",
	"title",
	"body",
	"is_encrypted",
	"tags",
	"attachments",
	"access_level",
	"allow_sharing",
	"searchable_content",
	"created_at",
	"updated_at",
	"edited_at",
	"last_accessed_at",
}

var auditColumns = []string{
	"id",
	"note_id",
	"action",
	"actor_id",
	"actor_role",
	"ip",
	"user_agent",
	"details",
	"occurred_at",
}

// latestAuditTimestamp yields max(now, last timestamp of the note).
// Arguments: now, note id, now.
const latestAuditTimestamp = `%s(?, COALESCE((SELECT MAX(occurred_at) FROM note_audit WHERE note_id = ?), ?))`

// qualified prefixes every column with alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Timestamps are stored as UTC unix microseconds.
func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}

func nullableMicros(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMicros(*t), Valid: true}
}

func fromNullableMicros(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMicros(v.Int64)
	return &t
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	list := []string{}
	if raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return list, nil
}

func encodeDetails(details map[string]any) (string, error) {
	if len(details) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func decodeDetails(raw string) (map[string]any, error) {
	if raw == "" || raw == "{}" {
		return nil, nil
	}
	details := make(map[string]any)
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return details, nil
}

// noteValues returns the insert values of note in noteColumns order.
func noteValues(note models.Note) ([]any, error) {
	tags, err := encodeList(note.Tags)
	if err != nil {
		return nil, err
	}
	attachments, err := encodeList(note.Attachments)
	if err != nil {
		return nil, err
	}

	return []any{
		note.ID,
		note.CoachID,
		note.SessionID,
		note.ClientID,
		note.Title,
		note.Content,
		note.IsEncrypted,
		tags,
		attachments,
		string(note.Privacy.AccessLevel),
		note.Privacy.AllowSharing,
		note.SearchableContent,
		toMicros(note.CreatedAt),
		toMicros(note.UpdatedAt),
		nullableMicros(note.EditedAt),
		nullableMicros(note.LastAccessedAt),
	}, nil
}

// noteUpdates returns the mutable columns of note.
func noteUpdates(note models.Note) (map[string]any, error) {
	tags, err := encodeList(note.Tags)
	if err != nil {
		return nil, err
	}
	attachments, err := encodeList(note.Attachments)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"title":              note.Title,
		"body":               note.Content,
		"is_encrypted":       note.IsEncrypted,
		"tags":               tags,
		"attachments":        attachments,
		"access_level":       string(note.Privacy.AccessLevel),
		"allow_sharing":      note.Privacy.AllowSharing,
		"searchable_content": note.SearchableContent,
		"updated_at":         toMicros(note.UpdatedAt),
		"edited_at":          nullableMicros(note.EditedAt),
	}, nil
}

func scanNote(s rowScanner) (models.Note, error) {
	var (
		note                     models.Note
		accessLevel              string
		tags, attachments        string
		createdAt, updatedAt     int64
		editedAt, lastAccessedAt sql.NullInt64
	)

	err := s.Scan(
		&note.ID,
		&note.CoachID,
		&note.SessionID,
		&note.ClientID,
		&note.Title,
		&note.Content,
		&note.IsEncrypted,
		&tags,
		&attachments,
		&accessLevel,
		&note.Privacy.AllowSharing,
		&note.SearchableContent,
		&createdAt,
		&updatedAt,
		&editedAt,
		&lastAccessedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	if note.Tags, err = decodeList(tags); err != nil {
		return models.Note{}, err
	}
	if note.Attachments, err = decodeList(attachments); err != nil {
		return models.Note{}, err
	}

	note.Privacy.AccessLevel = models.AccessLevel(accessLevel)
	note.Privacy.SharedWith = []string{}
	note.CreatedAt = fromMicros(createdAt)
	note.UpdatedAt = fromMicros(updatedAt)
	note.EditedAt = fromNullableMicros(editedAt)
	note.LastAccessedAt = fromNullableMicros(lastAccessedAt)

	return note, nil
}

func scanAuditEntry(s rowScanner) (models.AuditEntry, error) {
	var (
		entry      models.AuditEntry
		action     string
		role       string
		details    string
		occurredAt int64
	)

	err := s.Scan(
		&entry.ID,
		&entry.NoteID,
		&action,
		&entry.ActorID,
		&role,
		&entry.IP,
		&entry.UserAgent,
		&details,
		&occurredAt,
	)
	if err != nil {
		return models.AuditEntry{}, err
	}

	if entry.Details, err = decodeDetails(details); err != nil {
		return models.AuditEntry{}, err
	}
	entry.Action = models.AuditAction(action)
	entry.ActorRole = models.Role(role)
	entry.Timestamp = fromMicros(occurredAt)

	return entry, nil
}
