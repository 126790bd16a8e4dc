package store

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-coach-notes/models"
)

func TestAuditRepository_AppendAndRecent(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	actor := models.Actor{ID: "coach-1", Role: models.RoleCoach, IP: "10.0.0.1", UserAgent: "test"}

	actions := []models.AuditAction{models.AuditCreated, models.AuditViewed, models.AuditShared}
	for i, action := range actions {
		entry := models.NewAuditEntry("note-1", action, actor, map[string]any{"n": i})
		entry.Timestamp = base.Add(time.Duration(i) * time.Second)

		saved, err := s.AuditRepository.AppendAuditEntry(ctx, entry)
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.True(t, saved.Timestamp.Equal(entry.Timestamp))
	}

	recent, err := s.AuditRepository.GetRecentAuditEntries(ctx, "note-1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, models.AuditShared, recent[0].Action)
	assert.Equal(t, models.AuditViewed, recent[1].Action)
	assert.Equal(t, "10.0.0.1", recent[0].IP)
	assert.Equal(t, models.RoleCoach, recent[0].ActorRole)
	assert.Equal(t, float64(2), recent[0].Details["n"])

	all, err := s.AuditRepository.GetRecentAuditEntries(ctx, "note-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.AuditRepository.GetRecentAuditEntries(ctx, "other-note", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	// the limit only bounds the query, it never sizes an allocation
	huge, err := s.AuditRepository.GetRecentAuditEntries(ctx, "note-1", math.MaxInt64/4)
	require.NoError(t, err)
	assert.Len(t, huge, 3)
}

// TestAuditRepository_ClockSkew checks that an entry stamped before the
// latest entry of the note is stored at the latest timestamp instead.
func TestAuditRepository_ClockSkew(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first, err := s.AuditRepository.AppendAuditEntry(ctx, models.AuditEntry{
		NoteID: "note-1", Action: models.AuditCreated, ActorID: "c", ActorRole: models.RoleCoach, Timestamp: base,
	})
	require.NoError(t, err)

	skewed, err := s.AuditRepository.AppendAuditEntry(ctx, models.AuditEntry{
		NoteID: "note-1", Action: models.AuditViewed, ActorID: "c", ActorRole: models.RoleCoach, Timestamp: base.Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, skewed.Timestamp.Equal(first.Timestamp))

	// another note is not affected
	other, err := s.AuditRepository.AppendAuditEntry(ctx, models.AuditEntry{
		NoteID: "note-2", Action: models.AuditCreated, ActorID: "c", ActorRole: models.RoleCoach, Timestamp: base.Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, other.Timestamp.Equal(base.Add(-time.Hour)))
}

// TestAuditRepository_AppendOnlyProperty checks that the trail grows by one
// per append and stays ordered by non-increasing timestamps whatever the
// order of the incoming timestamps.
func TestAuditRepository_AppendOnlyProperty(t *testing.T) {
	ctx := testContext()
	s := newSQLiteStorages(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var seq int

	rapid.Check(t, func(rt *rapid.T) {
		seq++
		noteID := fmt.Sprintf("prop-note-%d", seq)
		offsets := rapid.SliceOfN(rapid.IntRange(-600, 600), 1, 20).Draw(rt, "offsets")

		for i, off := range offsets {
			_, err := s.AuditRepository.AppendAuditEntry(ctx, models.AuditEntry{
				NoteID:    noteID,
				Action:    models.AuditViewed,
				ActorID:   "actor",
				ActorRole: models.RoleClient,
				Timestamp: base.Add(time.Duration(off) * time.Second),
			})
			if err != nil {
				rt.Fatalf("append: %v", err)
			}

			trail, err := s.AuditRepository.GetRecentAuditEntries(ctx, noteID, 0)
			if err != nil {
				rt.Fatalf("recent: %v", err)
			}
			if len(trail) != i+1 {
				rt.Fatalf("trail length %d after %d appends", len(trail), i+1)
			}
			for j := 1; j < len(trail); j++ {
				if trail[j].Timestamp.After(trail[j-1].Timestamp) {
					rt.Fatalf("trail not ordered most recent first at %d", j)
				}
				if trail[j].ID > trail[j-1].ID {
					rt.Fatalf("insertion order violated at %d", j)
				}
			}
		}
	})
}
