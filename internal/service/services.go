package service

import (
	"fmt"

	"github.com/MKhiriev/go-coach-notes/internal/audit"
	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/crypto"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/policy"
	"github.com/MKhiriev/go-coach-notes/internal/search"
	"github.com/MKhiriev/go-coach-notes/internal/store"
	"github.com/MKhiriev/go-coach-notes/internal/utils"
	"github.com/MKhiriev/go-coach-notes/models"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService

	// SearchIndex is shared with the index rebuild worker.
	SearchIndex search.Index
}

// NewServices wires the note service and its collaborators. It fails when
// the encryption secret or the application version is missing.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	codec, err := crypto.NewCodec(cfg.App.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create note codec: %w", err)
	}
	blinder, err := crypto.NewBlinder(cfg.App.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create search blinder: %w", err)
	}

	accessPolicy := policy.NewAccessPolicy()
	content := search.NewContentBuilder(blinder)
	index := search.NewIndex(accessPolicy, content)

	noteService := NewNoteService(
		storages,
		audit.NewTrail(storages.AuditRepository),
		accessPolicy,
		codec,
		content,
		index,
		utils.NewNoteIDGenerator(),
		cfg.Search,
	)

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NoteService:    NewNoteValidationService(cfg.Search.MaxPageSize).Wrap(noteService),
		AppInfoService: appInfoService,
		SearchIndex:    index,
	}, nil
}
