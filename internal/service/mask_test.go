package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-coach-notes/models"
)

func TestMaskForViewer(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	note := models.Note{
		ID:                "n1",
		CoachID:           "c1",
		SessionID:         "s1",
		Title:             "Weekly check-in",
		Content:           "Client showed progress.",
		Tags:              []string{"progress"},
		Attachments:       []string{"files/a.pdf", "files/b.pdf"},
		SearchableContent: "weekly check in client showed progress progress",
		Privacy: models.Privacy{
			AccessLevel:  models.AccessShared,
			AllowSharing: true,
			SharedWith:   []string{"u1"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
	trail := []models.AuditEntry{{ID: 1, NoteID: "n1", Action: models.AuditCreated}}

	tests := []struct {
		name   string
		actor  models.Actor
		masked bool
	}{
		{name: "owner", actor: models.Actor{ID: "c1", Role: models.RoleCoach}},
		{name: "admin", actor: models.Actor{ID: "a1", Role: models.RoleAdmin}},
		{name: "shared viewer", actor: models.Actor{ID: "u1", Role: models.RoleClient}, masked: true},
		{name: "other", actor: models.Actor{ID: "x1", Role: models.RoleCoach}, masked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := MaskForViewer(note, tt.actor, trail)

			assert.Equal(t, tt.masked, view.Masked)
			assert.Equal(t, note.Title, view.Title)
			assert.Equal(t, note.Tags, view.Tags)
			assert.Equal(t, models.AccessShared, view.AccessLevel)
			assert.Len(t, view.Attachments, 2)

			if tt.masked {
				assert.Equal(t, models.RedactedPlaceholder, view.Content)
				assert.Equal(t, models.RedactedPlaceholder, view.SearchableContent)
				assert.Equal(t, []string{models.RedactedPlaceholder, models.RedactedPlaceholder}, view.Attachments)
				assert.NotNil(t, view.SharedWith)
				assert.Empty(t, view.SharedWith)
				assert.NotNil(t, view.AuditTrail)
				assert.Empty(t, view.AuditTrail)
				return
			}

			assert.Equal(t, note.Content, view.Content)
			assert.Equal(t, note.Attachments, view.Attachments)
			assert.Equal(t, []string{"u1"}, view.SharedWith)
			assert.Equal(t, trail, view.AuditTrail)
		})
	}
}

func TestMaskForViewer_DoesNotAliasNote(t *testing.T) {
	note := models.Note{ID: "n1", CoachID: "c1", Tags: []string{"a"}, Attachments: []string{"f"}}

	view := MaskForViewer(note, models.Actor{ID: "c1", Role: models.RoleCoach}, nil)
	view.Tags[0] = "changed"
	view.Attachments[0] = "changed"

	assert.Equal(t, "a", note.Tags[0])
	assert.Equal(t, "f", note.Attachments[0])
}
