package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const (
	sqlStateUniqueViolation   = "23505"
	sqlStateInvalidStatement  = "26000"
	sqlStateProtocolViolation = "08P01"
)

// columnValue is one present column of a patch.
type columnValue struct {
	column string
	value  any
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}

// isBindParameterMismatch matches the error a transaction-pooling proxy
// produces when a cached statement is bound on a different backend.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateProtocolViolation {
		return strings.Contains(pgErr.Message, "bind message supplies")
	}
	msg := err.Error()
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "requires")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateInvalidStatement {
		return true
	}
	msg := err.Error()
	return (strings.Contains(msg, "prepared statement") && strings.Contains(msg, "does not exist")) ||
		strings.Contains(msg, "("+sqlStateInvalidStatement+")")
}

// withStatementRetry runs a read once more when the first attempt hit a
// stale prepared statement.
func withStatementRetry(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil || ctx.Err() != nil {
		return err
	}
	if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
		return fn(ctx)
	}
	return err
}

// buildConflictSet renders the DO UPDATE assignments for an upsert. Only the
// given columns are overwritten; updated_at always follows the new row.
func buildConflictSet(columns []string) string {
	parts := make([]string, 0, len(columns)+1)
	seen := make(map[string]struct{}, len(columns)+1)
	all := append(append([]string{}, columns...), "updated_at")
	for _, col := range all {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		parts = append(parts, col+" = EXCLUDED."+col)
	}
	return strings.Join(parts, ", ")
}

func columnNames(items []columnValue) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.column)
	}
	return out
}

func nullableString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}

// lockPlayerKeys takes transaction-scoped advisory locks for every key an
// upsert may resolve through, in a stable order.
func lockPlayerKeys(ctx context.Context, tx *sqlx.Tx, keys ...string) error {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	sort.Strings(unique)

	for _, key := range unique {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "player:"+key); err != nil {
			return err
		}
	}
	return nil
}
