package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coach-notes/internal/validators"
	"github.com/MKhiriev/go-coach-notes/models"
)

// NoteValidationService rejects malformed requests before they reach the
// wrapped [NoteService]. Every rejection wraps [ErrValidation] and the
// validators sentinel describing the problem.
type NoteValidationService struct {
	inner       NoteService
	validator   validators.Validator
	maxPageSize int
}

func NewNoteValidationService(maxPageSize int) NoteServiceWrapper {
	return &NoteValidationService{
		validator:   validators.NewNoteValidator(maxPageSize),
		maxPageSize: maxPageSize,
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, actor models.Actor, req models.CreateNoteRequest) (models.NoteView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.NoteView{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateNote(ctx, actor, req)
}

func (v *NoteValidationService) GetNote(ctx context.Context, actor models.Actor, noteID string) (models.NoteView, error) {
	if err := validateNoteID(noteID); err != nil {
		return models.NoteView{}, err
	}

	return v.inner.GetNote(ctx, actor, noteID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, actor models.Actor, req models.UpdateNoteRequest) (models.NoteView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.NoteView{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateNote(ctx, actor, req)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, actor models.Actor, noteID string) error {
	if err := validateNoteID(noteID); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, actor, noteID)
}

func (v *NoteValidationService) ShareNote(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SharingResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.ShareNote(ctx, actor, req)
}

func (v *NoteValidationService) UnshareNote(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SharingResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UnshareNote(ctx, actor, req)
}

func (v *NoteValidationService) SearchNotes(ctx context.Context, actor models.Actor, filters models.SearchFilters) (models.SearchResult, error) {
	if err := v.validator.Validate(ctx, filters); err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.SearchNotes(ctx, actor, filters)
}

func (v *NoteValidationService) Suggest(ctx context.Context, actor models.Actor, req models.SuggestRequest) ([]string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Suggest(ctx, actor, req)
}

func (v *NoteValidationService) PopularTags(ctx context.Context, actor models.Actor, req models.PopularTagsRequest) ([]models.TagCount, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.PopularTags(ctx, actor, req)
}

func (v *NoteValidationService) ListSessionNotes(ctx context.Context, actor models.Actor, sessionID string) ([]models.NoteView, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptySessionID)
	}

	return v.inner.ListSessionNotes(ctx, actor, sessionID)
}

func (v *NoteValidationService) AuditTrail(ctx context.Context, actor models.Actor, noteID string, n int) ([]models.AuditEntry, error) {
	if err := validateNoteID(noteID); err != nil {
		return nil, err
	}
	if n < 0 || (v.maxPageSize > 0 && n > v.maxPageSize) {
		return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidLimit)
	}

	return v.inner.AuditTrail(ctx, actor, noteID, n)
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func validateNoteID(noteID string) error {
	if noteID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyNoteID)
	}
	return nil
}
