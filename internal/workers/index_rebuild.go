// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/search"
	"github.com/MKhiriev/go-coach-notes/internal/store"
	"github.com/MKhiriev/go-coach-notes/models"
)

// IndexRebuildWorker loads every stored note into the in-memory search index.
// The index is not persisted, so the server runs it once before serving.
type IndexRebuildWorker struct {
	notes  store.NoteRepository
	index  search.Index
	logger *logger.Logger
}

func NewIndexRebuildWorker(notes store.NoteRepository, index search.Index, logger *logger.Logger) *IndexRebuildWorker {
	return &IndexRebuildWorker{notes: notes, index: index, logger: logger}
}

func (w *IndexRebuildWorker) Run(ctx context.Context) error {
	start := time.Now()

	notes, err := w.notes.ListNotes(ctx, models.NoteListFilter{})
	if err != nil {
		w.logger.Err(err).Str("func", "*IndexRebuildWorker.Run").Msg("error listing notes")
		return fmt.Errorf("rebuild search index: %w", err)
	}

	w.index.Rebuild(notes)

	w.logger.Info().
		Str("func", "*IndexRebuildWorker.Run").
		Int("notes", w.index.Len()).
		Dur("duration", time.Since(start)).
		Msg("search index rebuilt")

	return nil
}
