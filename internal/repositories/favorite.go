package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/conduit-core/internal/logger"
)

type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// Count returns the number of favorite edges for the article.
func (r *FavoriteReadRepository) Count(ctx context.Context, articleID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM article_favorite WHERE article_id = $1
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, articleID)

	logger.Log.Infow("favorite count",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID},
		"result", count,
		"error", err,
	)

	return count, err
}

// Exists reports whether the user has favorited the article.
func (r *FavoriteReadRepository) Exists(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM article_favorite
			WHERE article_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, articleID, userID)

	logger.Log.Infow("favorite exists",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID, userID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter TxGetter) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the favorite edge. A duplicate edge surfaces as
// ErrDuplicateFavorite; concurrent duplicates resolve in the database.
func (r *FavoriteWriteRepository) Save(ctx context.Context, articleID, userID uuid.UUID) error {
	const query = `
		INSERT INTO article_favorite (article_id, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT ON CONSTRAINT article_favorite_pkey DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, articleID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("favorite save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDuplicateFavorite
	}
	return nil
}

// Delete removes the favorite edge; sql.ErrNoRows if it did not exist.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, articleID, userID uuid.UUID) error {
	const query = `
		DELETE FROM article_favorite
		WHERE article_id = $1 AND user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, articleID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("favorite delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
