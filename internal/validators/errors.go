package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNoteID        = errors.New("note ID is required")
	ErrEmptySessionID     = errors.New("session ID is required")
	ErrEmptyContent       = errors.New("content is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrInvalidTag         = errors.New("invalid tag")
	ErrTooManyTags        = errors.New("too many tags")
	ErrInvalidAttachment  = errors.New("invalid attachment reference")
	ErrInvalidAccessLevel = errors.New("invalid access level")
	ErrSharingDisabled    = errors.New("shared users require sharing to be allowed")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrEmptyUserIDs       = errors.New("user IDs list cannot be empty")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrInvalidPage        = errors.New("invalid page")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrEmptyPrefix        = errors.New("prefix is required")
)
