package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" and "note_shares" tables.
type noteRepository struct {
	*DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB) NoteRepository {
	return &noteRepository{DB: db}
}

// CreateNote inserts the note and its share list. Returns
// [ErrNoteAlreadyExists] when the id is taken.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	values, err := noteValues(note)
	if err != nil {
		return err
	}

	query, args, err := r.builder().
		Insert(notesTable).
		Columns(noteColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return ErrNoteAlreadyExists
		}
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("note_id", note.ID).
			Msg("failed to insert note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(note.Privacy.SharedWith) > 0 {
		return r.AddSharedUsers(ctx, note.ID, note.Privacy.SharedWith, note.CreatedAt)
	}

	return nil
}

// GetNote returns the note with its share list, or [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	shares, err := r.shares(ctx, sq.Eq{"n.id": noteID})
	if err != nil {
		return models.Note{}, err
	}
	if list, ok := shares[noteID]; ok {
		note.Privacy.SharedWith = list
	}

	return note, nil
}

// GetNotes returns the notes whose ids are listed. Unknown ids are skipped.
func (r *noteRepository) GetNotes(ctx context.Context, noteIDs []string) ([]models.Note, error) {
	if len(noteIDs) == 0 {
		return []models.Note{}, nil
	}

	return r.selectNotes(ctx, "noteRepository.GetNotes", sq.Eq{"n.id": noteIDs})
}

// ListNotes returns the notes matching filter, oldest first.
func (r *noteRepository) ListNotes(ctx context.Context, filter models.NoteListFilter) ([]models.Note, error) {
	where := sq.Eq{}
	if filter.CoachID != "" {
		where["n.coach_id"] = filter.CoachID
	}
	if filter.SessionID != "" {
		where["n.session_id"] = filter.SessionID
	}

	return r.selectNotes(ctx, "noteRepository.ListNotes", where)
}

func (r *noteRepository) selectNotes(ctx context.Context, funcName string, where sq.Eq) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	builder := r.builder().
		Select(qualified("n", noteColumns)...).
		From(notesTable + " n").
		OrderBy("n.created_at", "n.id")
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(notes) == 0 {
		return notes, nil
	}

	shares, err := r.shares(ctx, where)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if list, ok := shares[notes[i].ID]; ok {
			notes[i].Privacy.SharedWith = list
		}
	}

	return notes, nil
}

// shares loads the share lists of the notes selected by where, keyed by
// note id, each in sharing order.
func (r *noteRepository) shares(ctx context.Context, where sq.Eq) (map[string][]string, error) {
	log := logger.FromContext(ctx)

	builder := r.builder().
		Select("s.note_id", "s.user_id").
		From(sharesTable + " s").
		Join(notesTable + " n ON n.id = s.note_id").
		OrderBy("s.note_id", "s.shared_at", "s.user_id")
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.shares").Msg("failed to execute query for note shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make(map[string][]string)
	for rows.Next() {
		var noteID, userID string
		if err = rows.Scan(&noteID, &userID); err != nil {
			log.Err(err).Str("func", "noteRepository.shares").Msg("failed to scan share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		shares[noteID] = append(shares[noteID], userID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shares, nil
}

// UpdateNote overwrites the mutable columns of the note.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	updates, err := noteUpdates(note)
	if err != nil {
		return err
	}

	query, args, err := r.builder().
		Update(notesTable).
		SetMap(updates).
		Where(sq.Eq{"id": note.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingNote(ctx, "noteRepository.UpdateNote", note.ID, query, args)
}

// TouchNote records a successful view at the given time.
func (r *noteRepository) TouchNote(ctx context.Context, noteID string, at time.Time) error {
	query, args, err := r.builder().
		Update(notesTable).
		Set("last_accessed_at", toMicros(at)).
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingNote(ctx, "noteRepository.TouchNote", noteID, query, args)
}

// SetUpdatedAt bumps updated_at alone. Share changes use it so the rest of
// the row is never rewritten from a stale read.
func (r *noteRepository) SetUpdatedAt(ctx context.Context, noteID string, at time.Time) error {
	query, args, err := r.builder().
		Update(notesTable).
		Set("updated_at", toMicros(at)).
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingNote(ctx, "noteRepository.SetUpdatedAt", noteID, query, args)
}

// DeleteNote removes the note and its share list.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string) error {
	if err := r.ClearSharedUsers(ctx, noteID); err != nil {
		return err
	}

	query, args, err := r.builder().
		Delete(notesTable).
		Where(sq.Eq{"id": noteID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingNote(ctx, "noteRepository.DeleteNote", noteID, query, args)
}

// AddSharedUsers grants view access to userIDs. Users already in the list
// keep their original share time. Nothing is granted on a note that does
// not allow sharing.
func (r *noteRepository) AddSharedUsers(ctx context.Context, noteID string, userIDs []string, at time.Time) error {
	if len(userIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	users := make([]string, len(userIDs))
	userArgs := make([]any, len(userIDs))
	for i, userID := range userIDs {
		users[i] = "(?)"
		userArgs[i] = userID
	}

	// rows are only produced while the note allows sharing, so a grant
	// racing with a disable inserts nothing
	granted := sq.Select("n.id", "u.column1").
		Column("CAST(? AS BIGINT)", toMicros(at)).
		From(notesTable+" n").
		CrossJoin("(VALUES "+strings.Join(users, ",")+") AS u", userArgs...).
		Where(sq.Eq{"n.id": noteID}).
		Where("n.allow_sharing")

	query, args, err := r.builder().
		Insert(sharesTable).
		Columns("note_id", "user_id", "shared_at").
		Select(granted).
		Suffix("ON CONFLICT (note_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.AddSharedUsers").
			Str("note_id", noteID).
			Int("users", len(userIDs)).
			Msg("failed to insert note shares")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ClearSharedUsers revokes view access of every user of the note.
func (r *noteRepository) ClearSharedUsers(ctx context.Context, noteID string) error {
	query, args, err := r.builder().
		Delete(sharesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteRepository.ClearSharedUsers").
			Str("note_id", noteID).
			Msg("failed to delete note shares")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveSharedUsers revokes view access of userIDs. Unknown users are ignored.
func (r *noteRepository) RemoveSharedUsers(ctx context.Context, noteID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Delete(sharesTable).
		Where(sq.Eq{"note_id": noteID, "user_id": userIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.RemoveSharedUsers").
			Str("note_id", noteID).
			Int("users", len(userIDs)).
			Msg("failed to delete note shares")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// execAffectingNote runs a statement that must touch exactly the given note.
func (r *noteRepository) execAffectingNote(ctx context.Context, funcName, noteID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("note_id", noteID).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
