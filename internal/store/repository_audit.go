package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

// auditRepository is the SQL implementation of [AuditRepository] over the
// insert-only "note_audit" table. Every append is a single INSERT, so
// concurrent writers never lose each other's entries.
type auditRepository struct {
	*DB
	now func() time.Time
}

// NewAuditRepository constructs an [AuditRepository] backed by db.
func NewAuditRepository(db *DB) AuditRepository {
	return &auditRepository{DB: db, now: time.Now}
}

// AppendAuditEntry inserts entry. The stored timestamp is the later of the
// entry timestamp (or the current time when unset) and the latest timestamp
// already recorded for the same note.
func (r *auditRepository) AppendAuditEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	at := entry.Timestamp
	if at.IsZero() {
		at = r.now()
	}
	now := toMicros(at)

	details, err := encodeDetails(entry.Details)
	if err != nil {
		return models.AuditEntry{}, err
	}

	query, args, err := r.builder().
		Insert(auditTable).
		Columns(auditColumns[1:]...).
		Values(
			entry.NoteID,
			string(entry.Action),
			entry.ActorID,
			string(entry.ActorRole),
			entry.IP,
			entry.UserAgent,
			details,
			sq.Expr(fmt.Sprintf(latestAuditTimestamp, r.dialect.Greatest), now, entry.NoteID, now),
		).
		Suffix("RETURNING id, occurred_at").
		ToSql()
	if err != nil {
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var occurredAt int64
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&entry.ID, &occurredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AuditEntry{}, ErrAuditEntryNotSaved
	}
	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.AppendAuditEntry").
			Str("note_id", entry.NoteID).
			Str("action", string(entry.Action)).
			Msg("failed to insert audit entry")
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	entry.Timestamp = fromMicros(occurredAt)
	return entry, nil
}

// GetRecentAuditEntries returns the latest entries of the note, most recent
// first. Entries sharing a timestamp are ordered by insertion.
func (r *auditRepository) GetRecentAuditEntries(ctx context.Context, noteID string, limit int) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	builder := r.builder().
		Select(auditColumns...).
		From(auditTable).
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("occurred_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.GetRecentAuditEntries").
			Str("note_id", noteID).
			Msg("failed to execute query for audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0, auditPageCapacity)
	for rows.Next() {
		entry, scanErr := scanAuditEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "auditRepository.GetRecentAuditEntries").
				Str("note_id", noteID).
				Msg("failed to scan audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
