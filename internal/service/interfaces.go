package service

import (
	"context"

	"github.com/MKhiriev/go-coach-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// NoteService orchestrates every operation on coach notes: it checks the
// access policy, encrypts and decrypts bodies, writes the audit trail, keeps
// the search index in sync and masks what it returns.
type NoteService interface {
	CreateNote(ctx context.Context, actor models.Actor, req models.CreateNoteRequest) (models.NoteView, error)
	GetNote(ctx context.Context, actor models.Actor, noteID string) (models.NoteView, error)
	UpdateNote(ctx context.Context, actor models.Actor, req models.UpdateNoteRequest) (models.NoteView, error)
	DeleteNote(ctx context.Context, actor models.Actor, noteID string) error

	ShareNote(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error)
	UnshareNote(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error)

	SearchNotes(ctx context.Context, actor models.Actor, filters models.SearchFilters) (models.SearchResult, error)
	Suggest(ctx context.Context, actor models.Actor, req models.SuggestRequest) ([]string, error)
	PopularTags(ctx context.Context, actor models.Actor, req models.PopularTagsRequest) ([]models.TagCount, error)

	ListSessionNotes(ctx context.Context, actor models.Actor, sessionID string) ([]models.NoteView, error)
	AuditTrail(ctx context.Context, actor models.Actor, noteID string, n int) ([]models.AuditEntry, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces unique note ids.
type IDGenerator interface {
	Generate() string
}
