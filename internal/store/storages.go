package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
)

// Storages aggregates the repositories sharing one database handle.
type Storages struct {
	NoteRepository    NoteRepository
	AuditRepository   AuditRepository
	SessionRepository SessionRepository
	Transactor        Transactor

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newStoragesFromDB(db), nil
}

func newStoragesFromDB(db *DB) *Storages {
	return &Storages{
		NoteRepository:    NewNoteRepository(db),
		AuditRepository:   NewAuditRepository(db),
		SessionRepository: NewSessionRepository(db),
		Transactor:        db,
		db:                db,
	}
}

// DB returns the underlying database handle.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connections.
func (s *Storages) Close() error {
	return s.db.Close()
}
