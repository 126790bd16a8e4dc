// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit provides the append-only audit trail of coach notes.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/store"
	"github.com/MKhiriev/go-coach-notes/models"
)

//go:generate mockgen -source=trail.go -destination=../mock/audit_mock.go -package=mock

var (
	ErrUnknownAction = errors.New("unknown audit action")
	ErrAppendFailed  = errors.New("audit entry was not appended")
	ErrReadFailed    = errors.New("audit entries were not read")
)

// Trail is the audit trail of all notes. Append is its only mutation.
type Trail interface {
	// Append records entry and returns it with the storage id and the
	// effective timestamp.
	Append(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)

	// Recent returns at most n entries of the note, most recent first.
	// A non-positive n yields an empty list.
	Recent(ctx context.Context, noteID string, n int) ([]models.AuditEntry, error)

	// All returns every entry of the note, most recent first.
	All(ctx context.Context, noteID string) ([]models.AuditEntry, error)
}

type trail struct {
	repository store.AuditRepository
	now        func() time.Time
}

// NewTrail constructs a [Trail] persisted through repository.
func NewTrail(repository store.AuditRepository) Trail {
	return &trail{repository: repository, now: time.Now}
}

func (t *trail) Append(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	if !entry.Action.IsValid() {
		return models.AuditEntry{}, fmt.Errorf("%w: %q", ErrUnknownAction, entry.Action)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = t.now()
	}

	saved, err := t.repository.AppendAuditEntry(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "trail.Append").
			Str("note_id", entry.NoteID).
			Str("action", string(entry.Action)).
			Msg("failed to append audit entry")
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}

	return saved, nil
}

func (t *trail) Recent(ctx context.Context, noteID string, n int) ([]models.AuditEntry, error) {
	if n <= 0 {
		return []models.AuditEntry{}, nil
	}
	return t.read(ctx, noteID, n)
}

func (t *trail) All(ctx context.Context, noteID string) ([]models.AuditEntry, error) {
	return t.read(ctx, noteID, 0)
}

func (t *trail) read(ctx context.Context, noteID string, limit int) ([]models.AuditEntry, error) {
	entries, err := t.repository.GetRecentAuditEntries(ctx, noteID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return entries, nil
}
