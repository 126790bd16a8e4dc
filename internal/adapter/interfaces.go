// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Go client of the coach-notes server.
//
// The primary abstraction is [NotesClient], which mirrors every HTTP endpoint
// of the server. The package ships an HTTP/REST implementation
// ([NewHTTPNotesClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrConflict] when sharing is
// disabled on the note).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-coach-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesClient talks to the coach-notes server on behalf of one actor, the
// one identified by the bearer token.
type NotesClient interface {
	// SetToken replaces the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string

	// CreateNote calls POST /api/notes.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.NoteView, error)

	// GetNote calls GET /api/notes/{id}.
	GetNote(ctx context.Context, noteID string) (models.NoteView, error)

	// UpdateNote calls PATCH /api/notes/{id}; only non-nil fields are sent.
	UpdateNote(ctx context.Context, req models.UpdateNoteRequest) (models.NoteView, error)

	// DeleteNote calls DELETE /api/notes/{id}.
	DeleteNote(ctx context.Context, noteID string) error

	// ShareNote calls POST /api/notes/{id}/share.
	ShareNote(ctx context.Context, req models.ShareRequest) (models.SharingResponse, error)

	// UnshareNote calls POST /api/notes/{id}/unshare.
	UnshareNote(ctx context.Context, req models.ShareRequest) (models.SharingResponse, error)

	// SearchNotes calls GET /api/notes/search with the filters encoded as
	// query parameters.
	SearchNotes(ctx context.Context, filters models.SearchFilters) (models.SearchResult, error)

	// Suggest calls GET /api/notes/suggest.
	Suggest(ctx context.Context, req models.SuggestRequest) ([]string, error)

	// PopularTags calls GET /api/notes/tags/popular.
	PopularTags(ctx context.Context, req models.PopularTagsRequest) ([]models.TagCount, error)

	// ListSessionNotes calls GET /api/sessions/{id}/notes.
	ListSessionNotes(ctx context.Context, sessionID string) ([]models.NoteView, error)

	// AuditTrail calls GET /api/notes/{id}/audit. n <= 0 lets the server
	// pick its default tail length.
	AuditTrail(ctx context.Context, noteID string, n int) ([]models.AuditEntry, error)

	// Version calls GET /api/version.
	Version(ctx context.Context) (string, error)
}
