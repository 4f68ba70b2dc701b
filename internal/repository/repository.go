// Package repository handles all interactions with the database.
//
// Each repository method is one parameterized statement built with
// squirrel (values are always bound, never interpolated), executed on a
// pooled connection, with rows mapped to model types by scany.
//
// Outcomes are explicit: a value, ErrNotFound (wrapped with context), or
// a wrapped driver error.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound reports that no active row matched a lookup or a targeted write.
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of pgxpool.Pool used by repositories. pgxmock pools
// satisfy it as well.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds PostgreSQL statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
