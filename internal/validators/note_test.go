// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coach-notes/models"
)

func ptr[T any](v T) *T { return &v }

func validCreateRequest() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		SessionID: "session-1",
		Title:     "Weekly check-in",
		Content:   "Client showed progress.",
		Tags:      []string{"progress"},
		Privacy:   models.Privacy{AccessLevel: models.AccessPrivate},
	}
}

func TestNewNoteValidator(t *testing.T) {
	require.NotNil(t, NewNoteValidator(100))
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator(100)
	ctx := context.Background()

	create := validCreateRequest()
	assert.NoError(t, v.Validate(ctx, create))
	assert.NoError(t, v.Validate(ctx, &create))
	assert.NoError(t, v.Validate(ctx, models.SearchFilters{}))
	assert.NoError(t, v.Validate(ctx, &models.PopularTagsRequest{Limit: 5}))
	assert.ErrorIs(t, v.Validate(ctx, "note"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, create, "unknown"), ErrUnknownField)
}

func TestValidateCreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateNoteRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CreateNoteRequest) {}},
		{name: "default access level", mutate: func(r *models.CreateNoteRequest) { r.Privacy.AccessLevel = "" }},
		{name: "missing session", mutate: func(r *models.CreateNoteRequest) { r.SessionID = " " }, wantErr: ErrEmptySessionID},
		{name: "missing content", mutate: func(r *models.CreateNoteRequest) { r.Content = "" }, wantErr: ErrEmptyContent},
		{name: "long title", mutate: func(r *models.CreateNoteRequest) { r.Title = strings.Repeat("t", MaxTitleLength+1) }, wantErr: ErrTitleTooLong},
		{name: "empty tag", mutate: func(r *models.CreateNoteRequest) { r.Tags = []string{"ok", "  "} }, wantErr: ErrInvalidTag},
		{name: "too many tags", mutate: func(r *models.CreateNoteRequest) { r.Tags = make([]string, MaxTags+1) }, wantErr: ErrTooManyTags},
		{name: "empty attachment", mutate: func(r *models.CreateNoteRequest) { r.Attachments = []string{""} }, wantErr: ErrInvalidAttachment},
		{name: "bad access level", mutate: func(r *models.CreateNoteRequest) { r.Privacy.AccessLevel = "public" }, wantErr: ErrInvalidAccessLevel},
		{
			name: "shared without sharing",
			mutate: func(r *models.CreateNoteRequest) {
				r.Privacy.SharedWith = []string{"user-u"}
			},
			wantErr: ErrSharingDisabled,
		},
		{
			name: "blank shared user",
			mutate: func(r *models.CreateNoteRequest) {
				r.Privacy.AllowSharing = true
				r.Privacy.SharedWith = []string{""}
			},
			wantErr: ErrInvalidUserID,
		},
	}

	v := NewNoteValidator(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreateRequest()
			tt.mutate(&r)

			err := v.Validate(context.Background(), r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateUpdateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateNoteRequest
		wantErr error
	}{
		{name: "title only", req: models.UpdateNoteRequest{NoteID: "n1", Title: ptr("B")}},
		{name: "sharing flag only", req: models.UpdateNoteRequest{NoteID: "n1", AllowSharing: ptr(false)}},
		{name: "no note id", req: models.UpdateNoteRequest{Title: ptr("B")}, wantErr: ErrEmptyNoteID},
		{name: "nothing to update", req: models.UpdateNoteRequest{NoteID: "n1"}, wantErr: ErrNoFieldsToUpdate},
		{name: "blank content", req: models.UpdateNoteRequest{NoteID: "n1", Content: ptr(" ")}, wantErr: ErrEmptyContent},
		{name: "bad tags", req: models.UpdateNoteRequest{NoteID: "n1", Tags: ptr([]string{""})}, wantErr: ErrInvalidTag},
		{name: "bad level", req: models.UpdateNoteRequest{NoteID: "n1", AccessLevel: ptr(models.AccessLevel("x"))}, wantErr: ErrInvalidAccessLevel},
	}

	v := NewNoteValidator(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateShareRequest(t *testing.T) {
	v := NewNoteValidator(100)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ShareRequest{NoteID: "n1", UserIDs: []string{"u1"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.ShareRequest{NoteID: "n1"}), ErrEmptyUserIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.ShareRequest{NoteID: "n1", UserIDs: []string{"u1", " "}}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.ShareRequest{UserIDs: []string{"u1"}}), ErrEmptyNoteID)
}

func TestValidateSearchFilters(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name    string
		filters models.SearchFilters
		wantErr error
	}{
		{name: "empty", filters: models.SearchFilters{}},
		{name: "full", filters: models.SearchFilters{
			Query: "progress", Tags: []string{"goals"}, AccessLevels: []models.AccessLevel{models.AccessShared},
			From: &earlier, To: &now, SortBy: models.SortByTitle, SortOrder: models.SortAsc, Page: 2, Limit: 100,
		}},
		{name: "same instant range", filters: models.SearchFilters{From: &now, To: &now}},
		{name: "inverted range", filters: models.SearchFilters{From: &now, To: &earlier}, wantErr: ErrInvalidDateRange},
		{name: "bad level", filters: models.SearchFilters{AccessLevels: []models.AccessLevel{"public"}}, wantErr: ErrInvalidAccessLevel},
		{name: "blank tag", filters: models.SearchFilters{Tags: []string{" "}}, wantErr: ErrInvalidTag},
		{name: "bad sort", filters: models.SearchFilters{SortBy: "size"}, wantErr: ErrInvalidSortField},
		{name: "bad order", filters: models.SearchFilters{SortOrder: "up"}, wantErr: ErrInvalidSortOrder},
		{name: "negative page", filters: models.SearchFilters{Page: -1}, wantErr: ErrInvalidPage},
		{name: "page beyond cap", filters: models.SearchFilters{Page: MaxPage + 1}, wantErr: ErrInvalidPage},
		{name: "limit too big", filters: models.SearchFilters{Limit: 101}, wantErr: ErrInvalidLimit},
		{name: "negative limit", filters: models.SearchFilters{Limit: -1}, wantErr: ErrInvalidLimit},
	}

	v := NewNoteValidator(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.filters)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSuggestRequest(t *testing.T) {
	v := NewNoteValidator(10)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SuggestRequest{Prefix: "pro"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SuggestRequest{Prefix: " "}), ErrEmptyPrefix)
	assert.ErrorIs(t, v.Validate(ctx, models.SuggestRequest{Prefix: "pro", Limit: 11}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.PopularTagsRequest{Limit: -3}), ErrInvalidLimit)
}
