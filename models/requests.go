package models

import "time"

// CreateNoteRequest carries the payload of a note creation.
type CreateNoteRequest struct {
	SessionID   string   `json:"session_id"`
	ClientID    string   `json:"client_id,omitempty"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Attachments []string `json:"attachments"`
	IsEncrypted bool     `json:"is_encrypted"`
	Privacy     Privacy  `json:"privacy"`
}

// UpdateNoteRequest is a partial update. Only non-nil fields are applied.
type UpdateNoteRequest struct {
	NoteID string `json:"-"`

	Title        *string      `json:"title,omitempty"`
	Content      *string      `json:"content,omitempty"`
	Tags         *[]string    `json:"tags,omitempty"`
	Attachments  *[]string    `json:"attachments,omitempty"`
	IsEncrypted  *bool        `json:"is_encrypted,omitempty"`
	AccessLevel  *AccessLevel `json:"access_level,omitempty"`
	AllowSharing *bool        `json:"allow_sharing,omitempty"`
}

// ShareRequest grants or revokes view access for the listed users.
type ShareRequest struct {
	NoteID  string   `json:"-"`
	UserIDs []string `json:"user_ids"`
	Reason  string   `json:"reason,omitempty"`
}

// SharingResponse is returned by share and unshare operations.
type SharingResponse struct {
	NoteID       string   `json:"note_id"`
	AllowSharing bool     `json:"allow_sharing"`
	SharedWith   []string `json:"shared_with"`
}

// SortField selects the ordering of search results without a text query.
type SortField string

const (
	SortByDate       SortField = "date"
	SortByTitle      SortField = "title"
	SortByLastAccess SortField = "lastAccess"
)

// SortOrder is the direction of SortField ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchFilters describes a note search. Zero values do not filter.
type SearchFilters struct {
	Query        string        `json:"query,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	AccessLevels []AccessLevel `json:"access_levels,omitempty"`
	From         *time.Time    `json:"from,omitempty"`
	To           *time.Time    `json:"to,omitempty"`
	CoachID      string        `json:"coach_id,omitempty"`
	SessionID    string        `json:"session_id,omitempty"`
	SortBy       SortField     `json:"sort_by,omitempty"`
	SortOrder    SortOrder     `json:"sort_order,omitempty"`
	Page         int           `json:"page,omitempty"`
	Limit        int           `json:"limit,omitempty"`
}

// Pagination is the page metadata of list responses.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes TotalPages from total and limit.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, TotalCount: total, TotalPages: pages}
}

// SearchResult is a page of masked notes.
type SearchResult struct {
	Notes      []NoteView `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// TagCount is an entry of the popular tags aggregation.
type TagCount struct {
	Tag      string    `json:"tag"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// SuggestRequest asks for autocomplete candidates.
type SuggestRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit,omitempty"`
}

// PopularTagsRequest asks for the most used tags.
type PopularTagsRequest struct {
	Limit int `json:"limit,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
