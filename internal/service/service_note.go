// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/audit"
	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/crypto"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/policy"
	"github.com/MKhiriev/go-coach-notes/internal/search"
	"github.com/MKhiriev/go-coach-notes/internal/store"
	"github.com/MKhiriev/go-coach-notes/models"
)

// Field names recorded in the details of Updated audit entries.
const (
	changedTitle        = "title"
	changedContent      = "content"
	changedTags         = "tags"
	changedAttachments  = "attachments"
	changedIsEncrypted  = "is_encrypted"
	changedAccessLevel  = "access_level"
	changedAllowSharing = "allow_sharing"
	changedSharedWith   = "shared_with"
)

// actionCreate is recorded in the details of denied create attempts. It is
// not a note action because no note exists yet.
const actionCreate = "create"

type noteService struct {
	notes      store.NoteRepository
	sessions   store.SessionRepository
	transactor store.Transactor

	trail   audit.Trail
	policy  policy.AccessPolicy
	codec   crypto.Codec
	content *search.ContentBuilder
	index   search.Index
	ids     IDGenerator

	cfg config.Search
	now func() time.Time
}

// NewNoteService constructs the [NoteService] orchestrating storages, the
// audit trail, the access policy, the codec and the search index. The index
// is expected to be filled by the caller (see workers.IndexRebuildWorker).
func NewNoteService(
	storages *store.Storages,
	trail audit.Trail,
	accessPolicy policy.AccessPolicy,
	codec crypto.Codec,
	content *search.ContentBuilder,
	index search.Index,
	ids IDGenerator,
	cfg config.Search,
) NoteService {
	return &noteService{
		notes:      storages.NoteRepository,
		sessions:   storages.SessionRepository,
		transactor: storages.Transactor,
		trail:      trail,
		policy:     accessPolicy,
		codec:      codec,
		content:    content,
		index:      index,
		ids:        ids,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (s *noteService) CreateNote(ctx context.Context, actor models.Actor, req models.CreateNoteRequest) (models.NoteView, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		return models.NoteView{}, s.storeError(ctx, "noteService.CreateNote", err)
	}

	if !s.policy.CanCreate(session, actor) {
		denial := models.NewAuditEntry("", models.AuditAccessDenied, actor, map[string]any{
			models.AuditDetailAction:    actionCreate,
			models.AuditDetailReason:    policy.ReasonNotAuthorized,
			models.AuditDetailSessionID: session.ID,
		})
		return models.NoteView{}, s.recordDenial(ctx, denial, ErrForbidden)
	}

	now := s.now()

	accessLevel := req.Privacy.AccessLevel
	if accessLevel == "" {
		accessLevel = models.AccessPrivate
	}
	clientID := req.ClientID
	if clientID == "" {
		clientID = session.ClientID
	}

	note := models.Note{
		ID:          s.ids.Generate(),
		CoachID:     session.CoachID,
		SessionID:   session.ID,
		ClientID:    clientID,
		Title:       req.Title,
		Content:     req.Content,
		IsEncrypted: req.IsEncrypted,
		Tags:        search.NormalizeTags(req.Tags),
		Attachments: append([]string{}, req.Attachments...),
		Privacy: models.Privacy{
			AccessLevel:  accessLevel,
			AllowSharing: req.Privacy.AllowSharing,
			SharedWith:   mergeUserIDs(nil, req.Privacy.SharedWith, session.CoachID),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	note.SearchableContent = s.searchableContent(note)

	stored, err := s.seal(note)
	if err != nil {
		log.Err(err).Str("func", "noteService.CreateNote").Msg("failed to encrypt note body")
		return models.NoteView{}, err
	}

	err = s.transactor.InTx(ctx, func(ctx context.Context) error {
		if err := s.notes.CreateNote(ctx, stored); err != nil {
			return err
		}
		_, err := s.trail.Append(ctx, s.entry(note.ID, models.AuditCreated, actor, now, nil))
		return err
	})
	if err != nil {
		return models.NoteView{}, s.storeError(ctx, "noteService.CreateNote", err)
	}

	s.index.Index(note)

	log.Info().
		Str("note_id", note.ID).
		Str("session_id", note.SessionID).
		Bool("encrypted", note.IsEncrypted).
		Msg("note created")

	return s.view(ctx, note, actor)
}

func (s *noteService) GetNote(ctx context.Context, actor models.Actor, noteID string) (models.NoteView, error) {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return models.NoteView{}, s.storeError(ctx, "noteService.GetNote", err)
	}

	if err = s.authorize(ctx, note, actor, models.ActionView); err != nil {
		return models.NoteView{}, err
	}

	// viewers only ever see the masked body. A body that cannot be opened
	// is not a view, so nothing is recorded for it.
	if fullAccess(note, actor) {
		if note, err = s.open(ctx, note); err != nil {
			return models.NoteView{}, err
		}
	}

	now := s.now()
	err = s.transactor.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.trail.Append(ctx, s.entry(note.ID, models.AuditViewed, actor, now, nil)); err != nil {
			return err
		}
		return s.notes.TouchNote(ctx, note.ID, now)
	})
	if err != nil {
		return models.NoteView{}, s.storeError(ctx, "noteService.GetNote", err)
	}
	note.LastAccessedAt = &now
	s.index.Touch(note.ID, now)

	return s.view(ctx, note, actor)
}

func (s *noteService) UpdateNote(ctx context.Context, actor models.Actor, req models.UpdateNoteRequest) (models.NoteView, error) {
	log := logger.FromContext(ctx)

	current, err := s.notes.GetNote(ctx, req.NoteID)
	if err != nil {
		return models.NoteView{}, s.storeError(ctx, "noteService.UpdateNote", err)
	}

	if err = s.authorize(ctx, current, actor, models.ActionEdit); err != nil {
		return models.NoteView{}, err
	}

	current, err = s.open(ctx, current)
	if err != nil {
		return models.NoteView{}, err
	}

	updated, changed := applyUpdate(current, req)
	if !updated.Privacy.AllowSharing && len(current.Privacy.SharedWith) > 0 {
		updated.Privacy.SharedWith = []string{}
		changed = append(changed, changedSharedWith)
	}

	now := s.now()
	updated.UpdatedAt = now
	updated.EditedAt = &now
	updated.SearchableContent = s.searchableContent(updated)

	stored, err := s.seal(updated)
	if err != nil {
		log.Err(err).Str("func", "noteService.UpdateNote").Msg("failed to encrypt note body")
		return models.NoteView{}, err
	}

	err = s.transactor.InTx(ctx, func(ctx context.Context) error {
		if err := s.notes.UpdateNote(ctx, stored); err != nil {
			return err
		}
		// the whole share table of the note goes, including grants made
		// after current was read
		if !updated.Privacy.AllowSharing {
			if err := s.notes.ClearSharedUsers(ctx, updated.ID); err != nil {
				return err
			}
		}
		_, err := s.trail.Append(ctx, s.entry(updated.ID, models.AuditUpdated, actor, now, map[string]any{
			models.AuditDetailChangedFields: changed,
		}))
		return err
	})
	if err != nil {
		return models.NoteView{}, s.storeError(ctx, "noteService.UpdateNote", err)
	}

	s.index.Index(updated)

	log.Info().
		Str("note_id", updated.ID).
		Strs("changed_fields", changed).
		Msg("note updated")

	return s.view(ctx, updated, actor)
}

func (s *noteService) DeleteNote(ctx context.Context, actor models.Actor, noteID string) error {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return s.storeError(ctx, "noteService.DeleteNote", err)
	}

	if err = s.authorize(ctx, note, actor, models.ActionDelete); err != nil {
		return err
	}

	now := s.now()
	err = s.transactor.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.trail.Append(ctx, s.entry(note.ID, models.AuditDeleted, actor, now, nil)); err != nil {
			return err
		}
		return s.notes.DeleteNote(ctx, note.ID)
	})
	if err != nil {
		return s.storeError(ctx, "noteService.DeleteNote", err)
	}

	s.index.Remove(note.ID)

	logger.FromContext(ctx).Info().Str("note_id", note.ID).Msg("note deleted")

	return nil
}

func (s *noteService) ShareNote(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error) {
	return s.changeShares(ctx, actor, req, models.ActionShare)
}

func (s *noteService) UnshareNote(ctx context.Context, actor models.Actor, req models.ShareRequest) (models.SharingResponse, error) {
	return s.changeShares(ctx, actor, req, models.ActionUnshare)
}

// changeShares grants or revokes view access. The share list, the bumped
// UpdatedAt and the audit entry commit together.
func (s *noteService) changeShares(ctx context.Context, actor models.Actor, req models.ShareRequest, action models.Action) (models.SharingResponse, error) {
	funcName := "noteService.ShareNote"
	auditAction := models.AuditShared
	if action == models.ActionUnshare {
		funcName = "noteService.UnshareNote"
		auditAction = models.AuditUnshared
	}

	note, err := s.notes.GetNote(ctx, req.NoteID)
	if err != nil {
		return models.SharingResponse{}, s.storeError(ctx, funcName, err)
	}

	if err = s.authorize(ctx, note, actor, action); err != nil {
		return models.SharingResponse{}, err
	}

	var added, removed []string
	if action == models.ActionShare {
		merged := mergeUserIDs(note.Privacy.SharedWith, req.UserIDs, note.CoachID)
		added = merged[len(note.Privacy.SharedWith):]
	} else {
		_, removed = removeUserIDs(note.Privacy.SharedWith, req.UserIDs)
	}

	now := s.now()

	details := map[string]any{models.AuditDetailUserIDs: append([]string{}, req.UserIDs...)}
	if req.Reason != "" {
		details[models.AuditDetailReason] = req.Reason
	}

	// only the share rows and updated_at are written, so concurrent edits
	// of the body or the privacy flags are kept
	err = s.transactor.InTx(ctx, func(ctx context.Context) error {
		if err := s.notes.AddSharedUsers(ctx, note.ID, added, now); err != nil {
			return err
		}
		if err := s.notes.RemoveSharedUsers(ctx, note.ID, removed); err != nil {
			return err
		}
		if err := s.notes.SetUpdatedAt(ctx, note.ID, now); err != nil {
			return err
		}
		_, err := s.trail.Append(ctx, s.entry(note.ID, auditAction, actor, now, details))
		return err
	})
	if err != nil {
		return models.SharingResponse{}, s.storeError(ctx, funcName, err)
	}

	// reread so the index and the response carry the committed state
	note, err = s.notes.GetNote(ctx, note.ID)
	if err != nil {
		return models.SharingResponse{}, s.storeError(ctx, funcName, err)
	}

	s.index.Index(note)

	logger.FromContext(ctx).Info().
		Str("note_id", note.ID).
		Str("action", string(action)).
		Int("shared_with", len(note.Privacy.SharedWith)).
		Msg("note sharing changed")

	return models.SharingResponse{
		NoteID:       note.ID,
		AllowSharing: note.Privacy.AllowSharing,
		SharedWith:   append([]string{}, note.Privacy.SharedWith...),
	}, nil
}

func (s *noteService) SearchNotes(ctx context.Context, actor models.Actor, filters models.SearchFilters) (models.SearchResult, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = s.cfg.DefaultPageSize
	}

	ids, total := s.index.Query(actor, filters)

	notes, err := s.notes.GetNotes(ctx, ids)
	if err != nil {
		return models.SearchResult{}, s.storeError(ctx, "noteService.SearchNotes", err)
	}

	byID := make(map[string]models.Note, len(notes))
	for _, note := range notes {
		byID[note.ID] = note
	}

	views := make([]models.NoteView, 0, len(ids))
	for _, id := range ids {
		note, ok := byID[id]
		// deleted between the index read and the store read
		if !ok || !s.policy.CanAccess(note, actor, models.ActionView) {
			continue
		}
		if note, err = s.presentable(ctx, note, actor); err != nil {
			return models.SearchResult{}, err
		}
		views = append(views, MaskForViewer(note, actor, nil))
	}

	return models.SearchResult{
		Notes:      views,
		Pagination: models.NewPagination(filters.Page, filters.Limit, total),
	}, nil
}

func (s *noteService) Suggest(ctx context.Context, actor models.Actor, req models.SuggestRequest) ([]string, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.SuggestLimit
	}
	return s.index.Suggest(actor, req.Prefix, limit), nil
}

func (s *noteService) PopularTags(ctx context.Context, actor models.Actor, req models.PopularTagsRequest) ([]models.TagCount, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.SuggestLimit
	}
	return s.index.PopularTags(actor, limit), nil
}

func (s *noteService) ListSessionNotes(ctx context.Context, actor models.Actor, sessionID string) ([]models.NoteView, error) {
	if _, err := s.sessions.GetSession(ctx, sessionID); err != nil {
		return nil, s.storeError(ctx, "noteService.ListSessionNotes", err)
	}

	notes, err := s.notes.ListNotes(ctx, models.NoteListFilter{SessionID: sessionID})
	if err != nil {
		return nil, s.storeError(ctx, "noteService.ListSessionNotes", err)
	}

	views := make([]models.NoteView, 0, len(notes))
	for _, note := range notes {
		if !s.policy.CanAccess(note, actor, models.ActionView) {
			continue
		}
		if note, err = s.presentable(ctx, note, actor); err != nil {
			return nil, err
		}
		views = append(views, MaskForViewer(note, actor, nil))
	}

	return views, nil
}

func (s *noteService) AuditTrail(ctx context.Context, actor models.Actor, noteID string, n int) ([]models.AuditEntry, error) {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return nil, s.storeError(ctx, "noteService.AuditTrail", err)
	}

	if !fullAccess(note, actor) {
		denial := models.NewAuditEntry(note.ID, models.AuditAccessDenied, actor, map[string]any{
			models.AuditDetailAction: "audit",
			models.AuditDetailReason: policy.ReasonNotAuthorized,
		})
		return nil, s.recordDenial(ctx, denial, ErrForbidden)
	}

	if n <= 0 {
		n = s.cfg.AuditTailLength
	}

	entries, err := s.trail.Recent(ctx, note.ID, n)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.AuditTrail").
			Str("note_id", note.ID).
			Msg("failed to read audit trail")
		return nil, err
	}

	return entries, nil
}

// authorize consults the policy and records a denial. Denied share and
// unshare attempts on notes that do not allow sharing yield
// [ErrShareNotAllowed], every other denial [ErrForbidden].
func (s *noteService) authorize(ctx context.Context, note models.Note, actor models.Actor, action models.Action) error {
	decision := s.policy.Decide(note, actor, action)
	if decision.Allowed {
		return nil
	}

	denial := models.NewAuditEntry(note.ID, models.AuditAccessDenied, actor, map[string]any{
		models.AuditDetailAction: string(action),
		models.AuditDetailReason: decision.Reason,
	})

	if decision.Reason == policy.ReasonSharingDisabled {
		return s.recordDenial(ctx, denial, ErrShareNotAllowed)
	}
	return s.recordDenial(ctx, denial, ErrForbidden)
}

// recordDenial appends the AccessDenied entry and returns denied. A failed
// append is returned instead, so no denial goes unrecorded.
func (s *noteService) recordDenial(ctx context.Context, entry models.AuditEntry, denied error) error {
	entry.Timestamp = s.now()

	if _, err := s.trail.Append(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.recordDenial").
			Str("note_id", entry.NoteID).
			Str("actor_id", entry.ActorID).
			Msg("failed to record access denial")
		return err
	}

	logger.FromContext(ctx).Warn().
		Str("note_id", entry.NoteID).
		Str("actor_id", entry.ActorID).
		Any("details", entry.Details).
		Msg("access denied")

	return denied
}

func (s *noteService) entry(noteID string, action models.AuditAction, actor models.Actor, at time.Time, details map[string]any) models.AuditEntry {
	entry := models.NewAuditEntry(noteID, action, actor, details)
	entry.Timestamp = at
	return entry
}

// view attaches the audit tail for owners and admins and masks the note.
func (s *noteService) view(ctx context.Context, note models.Note, actor models.Actor) (models.NoteView, error) {
	if !fullAccess(note, actor) {
		return MaskForViewer(note, actor, nil), nil
	}

	tail, err := s.trail.Recent(ctx, note.ID, s.cfg.AuditTailLength)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.view").
			Str("note_id", note.ID).
			Msg("failed to read audit tail")
		return models.NoteView{}, err
	}

	return MaskForViewer(note, actor, tail), nil
}

// presentable decrypts the body for actors who will see it.
func (s *noteService) presentable(ctx context.Context, note models.Note, actor models.Actor) (models.Note, error) {
	if !fullAccess(note, actor) {
		return note, nil
	}
	return s.open(ctx, note)
}

func (s *noteService) searchableContent(note models.Note) string {
	return s.content.Build(note.Title, note.Content, note.Tags, note.IsEncrypted)
}

// seal returns the note as persisted: the body is encrypted when the note
// is encrypted.
func (s *noteService) seal(note models.Note) (models.Note, error) {
	if !note.IsEncrypted {
		return note, nil
	}

	blob, err := s.codec.Encrypt(note.Content)
	if err != nil {
		return models.Note{}, fmt.Errorf("encrypt note body: %w", err)
	}
	note.Content = blob

	return note, nil
}

// open replaces the stored body with its plaintext.
func (s *noteService) open(ctx context.Context, note models.Note) (models.Note, error) {
	if !note.IsEncrypted {
		return note, nil
	}

	plaintext, err := s.codec.Decrypt(note.Content)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.open").
			Str("note_id", note.ID).
			Msg("failed to decrypt note body")
		return models.Note{}, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	note.Content = plaintext

	return note, nil
}

// storeError maps repository errors onto the service taxonomy. Unknown
// errors are logged and returned as is.
func (s *noteService) storeError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrSessionNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, ErrDecryption):
		return err
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("storage operation failed")
	return err
}

// fullAccess reports whether actor sees unmasked notes.
func fullAccess(note models.Note, actor models.Actor) bool {
	relation := policy.RelationOf(note, actor)
	return relation == policy.RelationOwner || relation == policy.RelationAdmin
}

// applyUpdate applies the provided fields of req to a copy of note and
// returns the names of the fields whose value changed.
func applyUpdate(note models.Note, req models.UpdateNoteRequest) (models.Note, []string) {
	updated := note.Clone()
	changed := []string{}

	if req.Title != nil && *req.Title != note.Title {
		updated.Title = *req.Title
		changed = append(changed, changedTitle)
	}
	if req.Content != nil && *req.Content != note.Content {
		updated.Content = *req.Content
		changed = append(changed, changedContent)
	}
	if req.Tags != nil {
		tags := search.NormalizeTags(*req.Tags)
		if !slices.Equal(tags, note.Tags) {
			updated.Tags = tags
			changed = append(changed, changedTags)
		}
	}
	if req.Attachments != nil && !slices.Equal(*req.Attachments, note.Attachments) {
		updated.Attachments = append([]string{}, *req.Attachments...)
		changed = append(changed, changedAttachments)
	}
	if req.IsEncrypted != nil && *req.IsEncrypted != note.IsEncrypted {
		updated.IsEncrypted = *req.IsEncrypted
		changed = append(changed, changedIsEncrypted)
	}
	if req.AccessLevel != nil && *req.AccessLevel != note.Privacy.AccessLevel {
		updated.Privacy.AccessLevel = *req.AccessLevel
		changed = append(changed, changedAccessLevel)
	}
	if req.AllowSharing != nil && *req.AllowSharing != note.Privacy.AllowSharing {
		updated.Privacy.AllowSharing = *req.AllowSharing
		changed = append(changed, changedAllowSharing)
	}

	return updated, changed
}

// mergeUserIDs appends the ids of add missing from current, keeping order.
// ownerID is never added. The result starts with current unchanged.
func mergeUserIDs(current, add []string, ownerID string) []string {
	merged := append([]string{}, current...)
	seen := make(map[string]struct{}, len(current)+len(add))
	for _, id := range current {
		seen[id] = struct{}{}
	}

	for _, id := range add {
		if id == "" || id == ownerID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}

	return merged
}

// removeUserIDs drops the ids of remove from current. It returns the
// remaining list and the ids that were actually present.
func removeUserIDs(current, remove []string) ([]string, []string) {
	drop := make(map[string]struct{}, len(remove))
	for _, id := range remove {
		drop[id] = struct{}{}
	}

	kept := []string{}
	removed := []string{}
	for _, id := range current {
		if _, ok := drop[id]; ok {
			removed = append(removed, id)
			continue
		}
		kept = append(kept, id)
	}

	return kept, removed
}
