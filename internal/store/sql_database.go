// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/migrations"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	// Name is the migrations dialect name.
	Name string
	// DriverName is the database/sql driver name.
	DriverName string
	// Placeholder is the squirrel bind parameter format.
	Placeholder sq.PlaceholderFormat
	// Greatest is the scalar "largest of" function.
	Greatest string
}

var (
	// PostgresDialect is used with the pgx stdlib driver.
	PostgresDialect = Dialect{
		Name:        migrations.DialectPostgres,
		DriverName:  "pgx",
		Placeholder: sq.Dollar,
		Greatest:    "GREATEST",
	}

	// SQLiteDialect is used with the mattn/go-sqlite3 driver.
	SQLiteDialect = Dialect{
		Name:        migrations.DialectSQLite,
		DriverName:  "sqlite3",
		Placeholder: sq.Question,
		Greatest:    "MAX",
	}
)

// DB is a database handle shared by all repositories.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// querier is the subset of *sql.DB and *sql.Tx used by the repositories.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// Migrate applies the embedded migrations of the DB dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.Name)
}

// Dialect returns the dialect the DB was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder)
}

// conn returns the transaction bound to ctx by [DB.InTx], or the pool.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// InTx runs fn inside a database transaction. Repository calls made with the
// context passed to fn join the transaction. Nested calls reuse the outer
// transaction. The transaction is rolled back when fn returns an error.
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.InTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "DB.InTx").Msg("failed to rollback transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.InTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
