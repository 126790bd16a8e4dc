package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

var sqliteSeq atomic.Int64

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// newSQLiteStorages opens a private in-memory database with the schema applied.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:store%d?mode=memory&cache=shared", sqliteSeq.Add(1)),
	}
	s, err := NewStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func seedSession(t *testing.T, s *Storages, session models.Session) {
	t.Helper()
	_, err := s.DB().ExecContext(testContext(),
		`INSERT INTO sessions (id, coach_id, client_id) VALUES (?, ?, ?)`,
		session.ID, session.CoachID, session.ClientID)
	require.NoError(t, err)
}

func sampleNote(id string, created time.Time) models.Note {
	return models.Note{
		ID:          id,
		CoachID:     "coach-1",
		SessionID:   "session-1",
		ClientID:    "client-1",
		Title:       "Weekly check-in",
		Content:     "Client showed progress.",
		Tags:        []string{"progress", "goals"},
		Attachments: []string{"files/plan.pdf"},
		Privacy: models.Privacy{
			AccessLevel:  models.AccessShared,
			AllowSharing: true,
			SharedWith:   []string{"user-a", "user-b"},
		},
		SearchableContent: "weekly check in client showed progress goals",
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestNoteRepository_CreateAndGet(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 123456000, time.UTC)

	note := sampleNote("note-1", created)
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	got, err := s.NoteRepository.GetNote(ctx, "note-1")
	require.NoError(t, err)

	assert.Equal(t, note, got)
	assert.False(t, got.IsEdited())
}

func TestNoteRepository_CreateDuplicate(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)

	note := sampleNote("note-1", time.Now().UTC())
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	err := s.NoteRepository.CreateNote(ctx, note)
	assert.ErrorIs(t, err, ErrNoteAlreadyExists)
}

func TestNoteRepository_GetMissing(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.NoteRepository.GetNote(testContext(), "missing")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_UpdateTouchDelete(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	note := sampleNote("note-1", created)
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	edited := created.Add(time.Hour)
	note.Title = "Renamed"
	note.Tags = []string{"renamed"}
	note.UpdatedAt = edited
	note.EditedAt = &edited
	require.NoError(t, s.NoteRepository.UpdateNote(ctx, note))

	viewed := created.Add(2 * time.Hour)
	require.NoError(t, s.NoteRepository.TouchNote(ctx, "note-1", viewed))

	got, err := s.NoteRepository.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, []string{"renamed"}, got.Tags)
	require.NotNil(t, got.EditedAt)
	assert.True(t, got.EditedAt.Equal(edited))
	require.NotNil(t, got.LastAccessedAt)
	assert.True(t, got.LastAccessedAt.Equal(viewed))
	assert.Equal(t, []string{"user-a", "user-b"}, got.Privacy.SharedWith)

	require.NoError(t, s.NoteRepository.DeleteNote(ctx, "note-1"))
	_, err = s.NoteRepository.GetNote(ctx, "note-1")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.ErrorIs(t, s.NoteRepository.DeleteNote(ctx, "note-1"), ErrNoteNotFound)
	assert.ErrorIs(t, s.NoteRepository.UpdateNote(ctx, note), ErrNoteNotFound)
	assert.ErrorIs(t, s.NoteRepository.TouchNote(ctx, "note-1", viewed), ErrNoteNotFound)
}

func TestNoteRepository_Shares(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	note := sampleNote("note-1", created)
	note.Privacy.SharedWith = nil
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	require.NoError(t, s.NoteRepository.AddSharedUsers(ctx, "note-1", []string{"u1", "u2"}, created))
	// re-adding keeps a single row per user
	require.NoError(t, s.NoteRepository.AddSharedUsers(ctx, "note-1", []string{"u2", "u3"}, created.Add(time.Minute)))

	got, err := s.NoteRepository.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2", "u3"}, got.Privacy.SharedWith)

	require.NoError(t, s.NoteRepository.RemoveSharedUsers(ctx, "note-1", []string{"u1", "unknown"}))

	got, err = s.NoteRepository.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u3"}, got.Privacy.SharedWith)

	require.NoError(t, s.NoteRepository.RemoveSharedUsers(ctx, "note-1", nil))
	require.NoError(t, s.NoteRepository.AddSharedUsers(ctx, "note-1", nil, created))
}

func TestNoteRepository_SharesRequireAllowSharing(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	note := sampleNote("note-1", created)
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	// sharing was disabled by a writer that committed first
	note.Privacy.AllowSharing = false
	require.NoError(t, s.NoteRepository.UpdateNote(ctx, note))
	require.NoError(t, s.NoteRepository.ClearSharedUsers(ctx, "note-1"))

	require.NoError(t, s.NoteRepository.AddSharedUsers(ctx, "note-1", []string{"late"}, created.Add(time.Minute)))
	require.NoError(t, s.NoteRepository.AddSharedUsers(ctx, "missing", []string{"late"}, created))

	got, err := s.NoteRepository.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Empty(t, got.Privacy.SharedWith)

	var rows int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM note_shares`).Scan(&rows))
	assert.Zero(t, rows)
}

func TestNoteRepository_SetUpdatedAtKeepsRow(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	note := sampleNote("note-1", created)
	require.NoError(t, s.NoteRepository.CreateNote(ctx, note))

	renamed := note
	renamed.Title = "Renamed"
	require.NoError(t, s.NoteRepository.UpdateNote(ctx, renamed))

	bumped := created.Add(time.Hour)
	require.NoError(t, s.NoteRepository.SetUpdatedAt(ctx, "note-1", bumped))

	got, err := s.NoteRepository.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.True(t, got.UpdatedAt.Equal(bumped))
	assert.Nil(t, got.EditedAt)

	assert.ErrorIs(t, s.NoteRepository.SetUpdatedAt(ctx, "missing", bumped), ErrNoteNotFound)
	assert.NoError(t, s.NoteRepository.ClearSharedUsers(ctx, "missing"))
}

func TestNoteRepository_ListAndGetNotes(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	n1 := sampleNote("n1", base)
	n2 := sampleNote("n2", base.Add(time.Minute))
	n2.SessionID = "session-2"
	n3 := sampleNote("n3", base.Add(2*time.Minute))
	n3.CoachID = "coach-2"
	n3.Privacy.SharedWith = []string{"only-n3"}

	for _, n := range []models.Note{n1, n2, n3} {
		require.NoError(t, s.NoteRepository.CreateNote(ctx, n))
	}

	tests := []struct {
		name    string
		filter  models.NoteListFilter
		wantIDs []string
	}{
		{name: "all", filter: models.NoteListFilter{}, wantIDs: []string{"n1", "n2", "n3"}},
		{name: "by coach", filter: models.NoteListFilter{CoachID: "coach-1"}, wantIDs: []string{"n1", "n2"}},
		{name: "by session", filter: models.NoteListFilter{SessionID: "session-2"}, wantIDs: []string{"n2"}},
		{name: "by coach and session", filter: models.NoteListFilter{CoachID: "coach-2", SessionID: "session-2"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := s.NoteRepository.ListNotes(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(notes))
			for _, n := range notes {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	notes, err := s.NoteRepository.GetNotes(ctx, []string{"n3", "missing", "n1"})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	byID := map[string]models.Note{notes[0].ID: notes[0], notes[1].ID: notes[1]}
	assert.Equal(t, []string{"only-n3"}, byID["n3"].Privacy.SharedWith)
	assert.Equal(t, []string{"user-a", "user-b"}, byID["n1"].Privacy.SharedWith)

	empty, err := s.NoteRepository.GetNotes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTransactor_RollbackAndCommit(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	created := time.Now().UTC()

	err := s.Transactor.InTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.NoteRepository.CreateNote(ctx, sampleNote("rolled-back", created)))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = s.NoteRepository.GetNote(ctx, "rolled-back")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	err = s.Transactor.InTx(ctx, func(ctx context.Context) error {
		if err := s.NoteRepository.CreateNote(ctx, sampleNote("committed", created)); err != nil {
			return err
		}
		// nested call joins the outer transaction
		return s.Transactor.InTx(ctx, func(ctx context.Context) error {
			_, err := s.AuditRepository.AppendAuditEntry(ctx, models.AuditEntry{
				NoteID: "committed", Action: models.AuditCreated, ActorID: "coach-1", ActorRole: models.RoleCoach,
			})
			return err
		})
	})
	require.NoError(t, err)

	_, err = s.NoteRepository.GetNote(ctx, "committed")
	assert.NoError(t, err)
	entries, err := s.AuditRepository.GetRecentAuditEntries(ctx, "committed", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSessionRepository_GetSession(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	seedSession(t, s, models.Session{ID: "session-1", CoachID: "coach-1", ClientID: "client-1"})

	session, err := s.SessionRepository.GetSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, models.Session{ID: "session-1", CoachID: "coach-1", ClientID: "client-1"}, session)

	_, err = s.SessionRepository.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(testContext(), config.DB{Driver: "mongo", DSN: "x"}, logger.Nop())
	assert.Error(t, err)
}
