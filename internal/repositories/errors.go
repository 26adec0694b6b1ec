package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// Storage-level constraint errors. Services translate these into the
// domain error taxonomy.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateSlug     = errors.New("article slug already exists")
	ErrDuplicateFollow   = errors.New("follow edge already exists")
	ErrDuplicateFavorite = errors.New("favorite edge already exists")
)

const uniqueViolationCode = "23505"

// mapConstraint translates a unique violation on a named constraint into
// the matching storage error. Any other error passes through untouched.
func mapConstraint(err error, constraints map[string]error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if mapped, ok := constraints[pgErr.ConstraintName]; ok {
			return mapped
		}
	}
	return err
}

// TxGetter resolves the transaction bound to the request context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the request transaction when present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
