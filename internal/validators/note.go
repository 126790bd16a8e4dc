package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-coach-notes/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldNoteID       = "note_id"
	FieldSessionID    = "session_id"
	FieldTitle        = "title"
	FieldContent      = "content"
	FieldTags         = "tags"
	FieldAttachments  = "attachments"
	FieldAccessLevel  = "access_level"
	FieldSharing      = "sharing"
	FieldUpdateFields = "update_fields"
	FieldUserIDs      = "user_ids"
	FieldDateRange    = "date_range"
	FieldSort         = "sort"
	FieldPage         = "page"
	FieldLimit        = "limit"
	FieldPrefix       = "prefix"
)

// Input limits.
const (
	MaxTitleLength = 200
	MaxTagLength   = 50
	MaxTags        = 30
	MaxPage        = 100_000
)

var (
	allowedSortFields = []models.SortField{models.SortByDate, models.SortByTitle, models.SortByLastAccess}
	allowedSortOrders = []models.SortOrder{models.SortAsc, models.SortDesc}
)

// NoteValidator implements [Validator] for the requests of the note service:
// CreateNoteRequest, UpdateNoteRequest, ShareRequest, SearchFilters,
// SuggestRequest and PopularTagsRequest. Value and pointer forms are
// accepted.
type NoteValidator struct {
	maxPageSize int
}

// NewNoteValidator constructs a [NoteValidator]. maxPageSize caps the limit
// of search, suggest and popular tags requests.
func NewNoteValidator(maxPageSize int) Validator {
	return &NoteValidator{maxPageSize: maxPageSize}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.UpdateNoteRequest:
		return v.validateUpdateRequest(value, fields...)
	case *models.UpdateNoteRequest:
		return v.validateUpdateRequest(*value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(*value, fields...)

	case models.SearchFilters:
		return v.validateSearchFilters(value, fields...)
	case *models.SearchFilters:
		return v.validateSearchFilters(*value, fields...)

	case models.SuggestRequest:
		return v.validateSuggestRequest(value, fields...)
	case *models.SuggestRequest:
		return v.validateSuggestRequest(*value, fields...)

	case models.PopularTagsRequest:
		return v.validateLimit(value.Limit)
	case *models.PopularTagsRequest:
		return v.validateLimit(value.Limit)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateRequest checks a note creation.
//
// Default fields: SessionID, Title, Content, Tags, Attachments, AccessLevel,
// Sharing. An empty access level is accepted and means private.
func (v *NoteValidator) validateCreateRequest(req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID, FieldTitle, FieldContent, FieldTags, FieldAttachments, FieldAccessLevel, FieldSharing}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldSessionID:
			if strings.TrimSpace(req.SessionID) == "" {
				err = ErrEmptySessionID
			}
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				err = ErrEmptyContent
			}
		case FieldTags:
			err = validateTags(req.Tags)
		case FieldAttachments:
			err = validateAttachments(req.Attachments)
		case FieldAccessLevel:
			if req.Privacy.AccessLevel != "" && !req.Privacy.AccessLevel.IsValid() {
				err = ErrInvalidAccessLevel
			}
		case FieldSharing:
			if len(req.Privacy.SharedWith) > 0 && !req.Privacy.AllowSharing {
				err = ErrSharingDisabled
			}
			if err == nil {
				err = validateUserIDs(req.Privacy.SharedWith)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateUpdateRequest checks a partial update. Only the provided fields
// are checked; at least one must be present.
func (v *NoteValidator) validateUpdateRequest(req models.UpdateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldUpdateFields, FieldTitle, FieldContent, FieldTags, FieldAttachments, FieldAccessLevel}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNoteID:
			if strings.TrimSpace(req.NoteID) == "" {
				err = ErrEmptyNoteID
			}
		case FieldUpdateFields:
			if req.Title == nil && req.Content == nil && req.Tags == nil && req.Attachments == nil &&
				req.IsEncrypted == nil && req.AccessLevel == nil && req.AllowSharing == nil {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if req.Title != nil {
				err = validateTitle(*req.Title)
			}
		case FieldContent:
			if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
				err = ErrEmptyContent
			}
		case FieldTags:
			if req.Tags != nil {
				err = validateTags(*req.Tags)
			}
		case FieldAttachments:
			if req.Attachments != nil {
				err = validateAttachments(*req.Attachments)
			}
		case FieldAccessLevel:
			if req.AccessLevel != nil && !req.AccessLevel.IsValid() {
				err = ErrInvalidAccessLevel
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteValidator) validateShareRequest(req models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldUserIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if strings.TrimSpace(req.NoteID) == "" {
				return ErrEmptyNoteID
			}
		case FieldUserIDs:
			if len(req.UserIDs) == 0 {
				return ErrEmptyUserIDs
			}
			if err := validateUserIDs(req.UserIDs); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateSearchFilters(filters models.SearchFilters, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateRange, FieldAccessLevel, FieldTags, FieldSort, FieldPage, FieldLimit}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldDateRange:
			if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
				err = ErrInvalidDateRange
			}
		case FieldAccessLevel:
			for _, level := range filters.AccessLevels {
				if !level.IsValid() {
					err = ErrInvalidAccessLevel
					break
				}
			}
		case FieldTags:
			for _, tag := range filters.Tags {
				if strings.TrimSpace(tag) == "" {
					err = ErrInvalidTag
					break
				}
			}
		case FieldSort:
			if filters.SortBy != "" && !contains(allowedSortFields, filters.SortBy) {
				err = ErrInvalidSortField
			} else if filters.SortOrder != "" && !contains(allowedSortOrders, filters.SortOrder) {
				err = ErrInvalidSortOrder
			}
		case FieldPage:
			if filters.Page < 0 || filters.Page > MaxPage {
				err = ErrInvalidPage
			}
		case FieldLimit:
			err = v.validateLimit(filters.Limit)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteValidator) validateSuggestRequest(req models.SuggestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrefix, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldPrefix:
			if strings.TrimSpace(req.Prefix) == "" {
				return ErrEmptyPrefix
			}
		case FieldLimit:
			if err := v.validateLimit(req.Limit); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLimit accepts zero (use the default) and 1..maxPageSize.
func (v *NoteValidator) validateLimit(limit int) error {
	if limit < 0 || (v.maxPageSize > 0 && limit > v.maxPageSize) {
		return ErrInvalidLimit
	}
	return nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return ErrTooManyTags
	}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || utf8.RuneCountInString(tag) > MaxTagLength {
			return ErrInvalidTag
		}
	}
	return nil
}

func validateAttachments(attachments []string) error {
	for _, ref := range attachments {
		if strings.TrimSpace(ref) == "" {
			return ErrInvalidAttachment
		}
	}
	return nil
}

func validateUserIDs(userIDs []string) error {
	for _, id := range userIDs {
		if strings.TrimSpace(id) == "" {
			return ErrInvalidUserID
		}
	}
	return nil
}

func contains[T comparable](values []T, value T) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
