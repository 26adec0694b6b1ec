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

// commentViewSelect assembles a comment with its author and the
// following flag relative to the viewer in $1.
const commentViewSelect = `
	SELECT
		comment.comment_id,
		comment.body,
		comment.created_at,
		comment.updated_at,
		author.username AS author_username,
		author.bio AS author_bio,
		author.image AS author_image,
		EXISTS(
			SELECT 1 FROM follow
			WHERE followed_user_id = author.user_id AND following_user_id = $1::uuid
		) AS following_author
	FROM article_comment comment
	JOIN "user" author ON author.user_id = comment.user_id
`

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByID returns the comment row, or nil if absent.
func (r *CommentReadRepository) GetByID(ctx context.Context, commentID int64) (*models.CommentDB, error) {
	const query = `
		SELECT comment_id, article_id, user_id, body, created_at, updated_at
		FROM article_comment
		WHERE comment_id = $1
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, commentID)

	logger.Log.Infow("comment get by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetViewByID returns the assembled comment view, or nil if absent.
func (r *CommentReadRepository) GetViewByID(ctx context.Context, viewerID *uuid.UUID, commentID int64) (*models.CommentRow, error) {
	query := commentViewSelect + `
	WHERE comment.comment_id = $2
	`

	var row models.CommentRow
	err := r.db.GetContext(ctx, &row, query, viewerID, commentID)

	logger.Log.Infow("comment get view by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, commentID},
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

// ListByArticle returns the article's comments in creation order, with
// the comment id as tie-break.
func (r *CommentReadRepository) ListByArticle(ctx context.Context, viewerID *uuid.UUID, articleID uuid.UUID) ([]models.CommentRow, error) {
	query := commentViewSelect + `
	WHERE comment.article_id = $2
	ORDER BY comment.created_at, comment.comment_id
	`

	var rows []models.CommentRow
	err := r.db.SelectContext(ctx, &rows, query, viewerID, articleID)

	logger.Log.Infow("comment list by article",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, articleID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter TxGetter) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a comment and returns its generated id. Ids come from a
// sequence, so they are monotonically increasing and never reused.
func (r *CommentWriteRepository) Save(ctx context.Context, articleID, userID uuid.UUID, body string) (int64, error) {
	const query = `
		INSERT INTO article_comment (article_id, user_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING comment_id
	`

	var commentID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &commentID, query, articleID, userID, body)

	logger.Log.Infow("comment save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID, userID},
		"result", commentID,
		"error", err,
	)

	return commentID, err
}

// Delete removes the comment; sql.ErrNoRows if it did not exist.
func (r *CommentWriteRepository) Delete(ctx context.Context, commentID int64) error {
	const query = `
		DELETE FROM article_comment WHERE comment_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, commentID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("comment delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
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
