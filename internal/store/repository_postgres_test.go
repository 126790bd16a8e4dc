package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newPostgresDBFromSQL wraps a mocked *sql.DB with the PostgreSQL dialect.
func newPostgresDBFromSQL(db *sql.DB) *DB {
	return newPostgresDB(db, logger.Nop())
}

func TestNewConnectPostgres_InvalidDSN(t *testing.T) {
	_, err := NewConnectPostgres(context.Background(), config.DB{
		Driver: config.DriverPostgres,
		DSN:    "postgres://coach@localhost:notaport/notes",
	}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing postgres DSN")
}

func noteRow(note models.Note) []driver.Value {
	values, err := noteValues(note)
	if err != nil {
		panic(err)
	}
	out := make([]driver.Value, len(values))
	for i, v := range values {
		if n, ok := v.(sql.NullInt64); ok {
			if n.Valid {
				out[i] = n.Int64
			} else {
				out[i] = nil
			}
			continue
		}
		out[i] = v
	}
	return out
}

func TestPostgresNoteRepository_CreateNote(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		note    models.Note
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success with shares",
			note: sampleNote("n1", created),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO notes \(id,coach_id,session_id`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO note_shares \(note_id,user_id,shared_at\) SELECT n\.id, u\.column1, CAST\(\$1 AS BIGINT\) FROM notes n CROSS JOIN \(VALUES \(\$2\),\(\$3\)\) AS u WHERE n\.id = \$4 AND n\.allow_sharing ON CONFLICT \(note_id, user_id\) DO NOTHING`).
					WithArgs(created.UnixMicro(), "user-a", "user-b", "n1").
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name: "duplicate id",
			note: sampleNote("n1", created),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO notes`).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: ErrNoteAlreadyExists,
		},
		{
			name: "connection failure",
			note: sampleNote("n1", created),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO notes`).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			repo := NewNoteRepository(newPostgresDBFromSQL(db))
			err := repo.CreateNote(testContext(), tt.note)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresNoteRepository_GetNote(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	note := sampleNote("n1", created)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)

		rows := sqlmock.NewRows(noteColumns).AddRow(noteRow(note)...)
		mock.ExpectQuery(`SELECT id, coach_id, .* FROM notes WHERE id = \$1`).
			WithArgs("n1").
			WillReturnRows(rows)
		mock.ExpectQuery(`SELECT s.note_id, s.user_id FROM note_shares s JOIN notes n ON n.id = s.note_id WHERE n.id = \$1 ORDER BY s.note_id, s.shared_at, s.user_id`).
			WithArgs("n1").
			WillReturnRows(sqlmock.NewRows([]string{"note_id", "user_id"}).
				AddRow("n1", "user-a").
				AddRow("n1", "user-b"))

		got, err := NewNoteRepository(newPostgresDBFromSQL(db)).GetNote(testContext(), "n1")
		require.NoError(t, err)
		assert.Equal(t, note, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectQuery(`FROM notes WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(noteColumns))

		_, err := NewNoteRepository(newPostgresDBFromSQL(db)).GetNote(testContext(), "missing")
		assert.ErrorIs(t, err, ErrNoteNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupted tags column", func(t *testing.T) {
		db, mock := newTestDB(t)

		row := noteRow(note)
		row[7] = "not json"
		mock.ExpectQuery(`FROM notes WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(row...))

		_, err := NewNoteRepository(newPostgresDBFromSQL(db)).GetNote(testContext(), "n1")
		assert.ErrorIs(t, err, ErrScanningRow)
		assert.ErrorIs(t, err, ErrEncodingColumn)
	})
}

func TestPostgresNoteRepository_ListNotes_QueryError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT n.id, .* FROM notes n WHERE n.coach_id = \$1 ORDER BY n.created_at, n.id`).
		WithArgs("coach-1").
		WillReturnError(errors.New("boom"))

	_, err := NewNoteRepository(newPostgresDBFromSQL(db)).ListNotes(testContext(), models.NoteListFilter{CoachID: "coach-1"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNoteRepository_UpdateNote(t *testing.T) {
	note := sampleNote("n1", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		result  sql.Result
		err     error
		wantErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: ErrNoteNotFound},
		{name: "failure", err: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)

			exp := mock.ExpectExec(`UPDATE notes SET .* WHERE id = \$11`)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := NewNoteRepository(newPostgresDBFromSQL(db)).UpdateNote(testContext(), note)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresNoteRepository_RemoveSharedUsers(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`DELETE FROM note_shares WHERE note_id = \$1 AND user_id IN \(\$2,\$3\)`).
		WithArgs("n1", "u1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewNoteRepository(newPostgresDBFromSQL(db)).RemoveSharedUsers(testContext(), "n1", []string{"u1", "u2"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNoteRepository_ClearSharedUsers(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`DELETE FROM note_shares WHERE note_id = \$1$`).
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := NewNoteRepository(newPostgresDBFromSQL(db)).ClearSharedUsers(testContext(), "n1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresNoteRepository_SetUpdatedAt(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	db, mock := newTestDB(t)

	mock.ExpectExec(`UPDATE notes SET updated_at = \$1 WHERE id = \$2`).
		WithArgs(at.UnixMicro(), "n1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewNoteRepository(newPostgresDBFromSQL(db)).SetUpdatedAt(testContext(), "n1", at)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuditRepository_AppendAuditEntry(t *testing.T) {
	db, mock := newTestDB(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO note_audit \(note_id,action,actor_id,actor_role,ip,user_agent,details,occurred_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,GREATEST\(\$8, COALESCE\(\(SELECT MAX\(occurred_at\) FROM note_audit WHERE note_id = \$9\), \$10\)\)\) RETURNING id, occurred_at`).
		WithArgs("n1", "viewed", "u1", "client", "10.0.0.1", "ua", `{"reason":"x"}`, at.UnixMicro(), "n1", at.UnixMicro()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at"}).AddRow(int64(7), at.Add(time.Second).UnixMicro()))

	repo := NewAuditRepository(newPostgresDBFromSQL(db))
	saved, err := repo.AppendAuditEntry(testContext(), models.AuditEntry{
		NoteID:    "n1",
		Action:    models.AuditViewed,
		ActorID:   "u1",
		ActorRole: models.RoleClient,
		IP:        "10.0.0.1",
		UserAgent: "ua",
		Details:   map[string]any{"reason": "x"},
		Timestamp: at,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.True(t, saved.Timestamp.Equal(at.Add(time.Second)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAuditRepository_GetRecent_ScanError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT id, note_id, .* FROM note_audit WHERE note_id = \$1 ORDER BY occurred_at DESC, id DESC LIMIT 10`).
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := NewAuditRepository(newPostgresDBFromSQL(db)).GetRecentAuditEntries(testContext(), "n1", 10)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestDB_InTx(t *testing.T) {
	t.Run("begin failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		err := newPostgresDBFromSQL(db).InTx(testContext(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("lost"))

		err := newPostgresDBFromSQL(db).InTx(testContext(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE notes SET last_accessed_at`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		store := newPostgresDBFromSQL(db)
		repo := NewNoteRepository(store)
		err := store.InTx(testContext(), func(ctx context.Context) error {
			return repo.TouchNote(ctx, "n1", time.Now())
		})
		assert.ErrorIs(t, err, ErrNoteNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	lite := NewSQLiteErrorClassifier()

	assert.True(t, pg.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, pg.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, pg.IsUniqueViolation(errors.New("plain")))
	assert.Equal(t, Retryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, NonRetryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.UndefinedTable}))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("plain")))

	assert.True(t, lite.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, lite.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, lite.Classify(errors.New("plain")))
}
