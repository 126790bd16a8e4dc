package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

type sessionRepository struct {
	*DB
}

// NewSessionRepository constructs a read-only [SessionRepository].
func NewSessionRepository(db *DB) SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	query, args, err := r.builder().
		Select("id", "coach_id", "client_id").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&session.ID, &session.CoachID, &session.ClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.GetSession").
			Str("session_id", sessionID).
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}
