package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
)

// articleViewSelect assembles an article with its author and the flags
// relative to the viewer in $1. A NULL viewer yields false flags.
const articleViewSelect = `
	SELECT
		article.article_id,
		article.slug,
		article.title,
		article.description,
		article.body,
		article.tag_list,
		article.created_at,
		article.updated_at,
		EXISTS(
			SELECT 1 FROM article_favorite fav
			WHERE fav.article_id = article.article_id AND fav.user_id = $1::uuid
		) AS favorited,
		(
			SELECT COUNT(*) FROM article_favorite fav
			WHERE fav.article_id = article.article_id
		) AS favorites_count,
		author.username AS author_username,
		author.bio AS author_bio,
		author.image AS author_image,
		EXISTS(
			SELECT 1 FROM follow
			WHERE followed_user_id = author.user_id AND following_user_id = $1::uuid
		) AS following_author
	FROM article
	JOIN "user" author ON author.user_id = article.user_id
`

type ArticleReadRepository struct {
	db *sqlx.DB
}

func NewArticleReadRepository(db *sqlx.DB) *ArticleReadRepository {
	return &ArticleReadRepository{db: db}
}

// GetMetaBySlug returns the id and author of the article with the given
// slug, or nil if absent.
func (r *ArticleReadRepository) GetMetaBySlug(ctx context.Context, slug string) (*models.ArticleMeta, error) {
	const query = `
		SELECT article_id, user_id FROM article WHERE slug = $1
	`

	var meta models.ArticleMeta
	err := r.db.GetContext(ctx, &meta, query, slug)

	logger.Log.Infow("article get meta by slug",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// GetViewBySlug returns the assembled article view, or nil if absent.
func (r *ArticleReadRepository) GetViewBySlug(ctx context.Context, viewerID *uuid.UUID, slug string) (*models.ArticleRow, error) {
	query := articleViewSelect + `
	WHERE article.slug = $2
	`

	var row models.ArticleRow
	err := r.db.GetContext(ctx, &row, query, viewerID, slug)

	logger.Log.Infow("article get view by slug",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, slug},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetViewByID returns the assembled article view, or nil if absent.
func (r *ArticleReadRepository) GetViewByID(ctx context.Context, viewerID *uuid.UUID, articleID uuid.UUID) (*models.ArticleRow, error) {
	query := articleViewSelect + `
	WHERE article.article_id = $2
	`

	var row models.ArticleRow
	err := r.db.GetContext(ctx, &row, query, viewerID, articleID)

	logger.Log.Infow("article get view by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, articleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns article views matching the filter, newest first with the
// article id as deterministic tie-break.
func (r *ArticleReadRepository) List(ctx context.Context, viewerID *uuid.UUID, filter models.ArticleFilter) ([]models.ArticleRow, error) {
	query := articleViewSelect + `
	WHERE (
		$2::text IS NULL OR author.username = $2
	) AND (
		$3::text IS NULL OR article.tag_list @> jsonb_build_array($3::text)
	) AND (
		$4::text IS NULL OR EXISTS(
			SELECT 1 FROM article_favorite af
			JOIN "user" u ON u.user_id = af.user_id
			WHERE u.username = $4 AND af.article_id = article.article_id
		)
	)
	ORDER BY article.created_at DESC, article.article_id DESC
	LIMIT $5 OFFSET $6
	`

	var rows []models.ArticleRow
	err := r.db.SelectContext(ctx, &rows, query,
		viewerID, filter.Author, filter.Tag, filter.FavoritedBy, filter.Limit, filter.Offset)

	logger.Log.Infow("article list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, filter.Author, filter.Tag, filter.FavoritedBy, filter.Limit, filter.Offset},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// Feed returns articles authored by users the viewer follows, newest first.
func (r *ArticleReadRepository) Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int64) ([]models.ArticleRow, error) {
	const query = `
		SELECT
			article.article_id,
			article.slug,
			article.title,
			article.description,
			article.body,
			article.tag_list,
			article.created_at,
			article.updated_at,
			EXISTS(
				SELECT 1 FROM article_favorite fav
				WHERE fav.article_id = article.article_id AND fav.user_id = $1
			) AS favorited,
			(
				SELECT COUNT(*) FROM article_favorite fav
				WHERE fav.article_id = article.article_id
			) AS favorites_count,
			author.username AS author_username,
			author.bio AS author_bio,
			author.image AS author_image,
			TRUE AS following_author
		FROM follow
		JOIN article ON article.user_id = follow.followed_user_id
		JOIN "user" author ON author.user_id = article.user_id
		WHERE follow.following_user_id = $1
		ORDER BY article.created_at DESC, article.article_id DESC
		LIMIT $2 OFFSET $3
	`

	var rows []models.ArticleRow
	err := r.db.SelectContext(ctx, &rows, query, viewerID, limit, offset)

	logger.Log.Infow("article feed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, limit, offset},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// ListTags returns the distinct tags across all articles, sorted.
func (r *ArticleReadRepository) ListTags(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT tag
		FROM article
		CROSS JOIN LATERAL jsonb_array_elements_text(article.tag_list) AS tag
		ORDER BY tag
	`

	var tags []string
	err := r.db.SelectContext(ctx, &tags, query)

	logger.Log.Infow("article list tags",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(tags),
		"error", err,
	)

	return tags, err
}

type ArticleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewArticleWriteRepository(db *sqlx.DB, txGetter TxGetter) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new article row. A duplicate slug surfaces as
// ErrDuplicateSlug via the unique constraint.
func (r *ArticleWriteRepository) Save(ctx context.Context, article models.ArticleDB) error {
	const query = `
		INSERT INTO article (article_id, user_id, slug, title, description, body, tag_list, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	args := []any{article.ArticleID, article.UserID, article.Slug,
		article.Title, article.Description, article.Body, article.TagList}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("article save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{article.ArticleID, article.UserID, article.Slug},
		"error", err,
	)

	return mapConstraint(err, map[string]error{
		"article_slug_key": ErrDuplicateSlug,
	})
}

// Update applies a partial update; nil fields keep their current value.
func (r *ArticleWriteRepository) Update(ctx context.Context, articleID uuid.UUID, upd models.ArticleUpdate) error {
	const query = `
		UPDATE article
		SET slug = COALESCE($2, slug),
		    title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    body = COALESCE($5, body),
		    tag_list = COALESCE($6, tag_list),
		    updated_at = NOW()
		WHERE article_id = $1
	`
	args := []any{articleID, upd.Slug, upd.Title, upd.Description, upd.Body, upd.TagList}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("article update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID, upd.Slug},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return mapConstraint(err, map[string]error{
			"article_slug_key": ErrDuplicateSlug,
		})
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the article together with its favorite edges and
// comments. The cascade runs in a single transaction: either the request
// transaction when one is bound to the context, or its own.
func (r *ArticleWriteRepository) Delete(ctx context.Context, articleID uuid.UUID) error {
	var tx *sqlx.Tx
	ownTx := false
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx == nil {
		var err error
		tx, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		ownTx = true
	}

	err := deleteArticleCascade(ctx, tx, articleID)

	logger.Log.Infow("article delete",
		"args", []any{articleID},
		"error", err,
	)

	if ownTx {
		if err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}
	return err
}

func deleteArticleCascade(ctx context.Context, tx *sqlx.Tx, articleID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_favorite WHERE article_id = $1`, articleID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_comment WHERE article_id = $1`, articleID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM article WHERE article_id = $1`, articleID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
