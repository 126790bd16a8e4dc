package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-coach-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes and their share lists.
//
// Content is stored as given: the caller encrypts it beforehand when the
// note is encrypted.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) error
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	// GetNotes returns the existing notes among noteIDs in no particular order.
	GetNotes(ctx context.Context, noteIDs []string) ([]models.Note, error)
	ListNotes(ctx context.Context, filter models.NoteListFilter) ([]models.Note, error)
	// UpdateNote overwrites the mutable columns of the note. Shares are not
	// touched.
	UpdateNote(ctx context.Context, note models.Note) error
	TouchNote(ctx context.Context, noteID string, at time.Time) error
	// SetUpdatedAt bumps updated_at without touching any other column.
	SetUpdatedAt(ctx context.Context, noteID string, at time.Time) error
	DeleteNote(ctx context.Context, noteID string) error
	// AddSharedUsers is a no-op on notes that do not allow sharing.
	AddSharedUsers(ctx context.Context, noteID string, userIDs []string, at time.Time) error
	RemoveSharedUsers(ctx context.Context, noteID string, userIDs []string) error
	// ClearSharedUsers drops the whole share list of the note.
	ClearSharedUsers(ctx context.Context, noteID string) error
}

// AuditRepository is the insert-only audit trail table.
type AuditRepository interface {
	// AppendAuditEntry inserts entry and returns it with the assigned id and
	// the effective timestamp, which is never before the latest timestamp of
	// the same note.
	AppendAuditEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)
	// GetRecentAuditEntries returns up to limit entries of the note, most
	// recent first. A non-positive limit returns the whole trail.
	GetRecentAuditEntries(ctx context.Context, noteID string, limit int) ([]models.AuditEntry, error)
}

// SessionRepository reads the sessions notes are attached to.
type SessionRepository interface {
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
}

// Transactor groups repository calls into one all-or-nothing unit.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
