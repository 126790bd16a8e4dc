package search

import (
	"time"

	"github.com/MKhiriev/go-coach-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_mock.go -package=mock

// Index is the in-memory search index over the searchable content of notes.
// Every read is filtered by the view permission of the requesting actor
// before ranking and pagination.
type Index interface {
	// Index inserts or replaces the note.
	Index(note models.Note)

	// Remove drops the note. Unknown ids are ignored.
	Remove(noteID string)

	// Touch sets the last access time of the note. Unknown ids are ignored.
	Touch(noteID string, at time.Time)

	// Rebuild replaces the whole index with notes.
	Rebuild(notes []models.Note)

	// Len returns the number of indexed notes.
	Len() int

	// Query returns the ids of one page of visible notes matching filters in
	// ranked order, and the number of visible matches across all pages.
	Query(actor models.Actor, filters models.SearchFilters) ([]string, int)

	// Suggest returns up to limit tags and titles of visible notes starting
	// with prefix, most common first.
	Suggest(actor models.Actor, prefix string, limit int) []string

	// PopularTags returns up to limit tags of visible notes, most frequent
	// first.
	PopularTags(actor models.Actor, limit int) []models.TagCount
}
