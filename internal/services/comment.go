package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
)

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	GetByID(ctx context.Context, commentID int64) (*models.CommentDB, error)
	GetViewByID(ctx context.Context, viewerID *uuid.UUID, commentID int64) (*models.CommentRow, error)
	ListByArticle(ctx context.Context, viewerID *uuid.UUID, articleID uuid.UUID) ([]models.CommentRow, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, articleID, userID uuid.UUID, body string) (int64, error)
	Delete(ctx context.Context, commentID int64) error
}

// CommentService handles commenting on articles.
type CommentService struct {
	articles ArticleReader
	reader   CommentReader
	writer   CommentWriter
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(articles ArticleReader, reader CommentReader, writer CommentWriter) *CommentService {
	return &CommentService{articles: articles, reader: reader, writer: writer}
}

// Add attaches a comment to the article behind the slug.
func (svc *CommentService) Add(ctx context.Context, slugStr string, authorID uuid.UUID, body string) (*models.CommentView, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrValidation
	}

	meta, err := svc.articles.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if meta == nil {
		return nil, ErrNotFound
	}

	commentID, err := svc.writer.Save(ctx, meta.ArticleID, authorID, body)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "err", err)
		return nil, err
	}

	row, err := svc.reader.GetViewByID(ctx, &authorID, commentID)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	view := row.ToView()
	return &view, nil
}

// Remove deletes the comment. Only the comment's author may remove it,
// and the comment must belong to the article behind the slug.
func (svc *CommentService) Remove(ctx context.Context, slugStr string, commentID int64, requesterID uuid.UUID) error {
	meta, err := svc.articles.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return err
	}
	if meta == nil {
		return ErrNotFound
	}

	comment, err := svc.reader.GetByID(ctx, commentID)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "err", err)
		return err
	}
	if comment == nil || comment.ArticleID != meta.ArticleID {
		return ErrNotFound
	}
	if comment.UserID != requesterID {
		return ErrNotAuthor
	}

	if err := svc.writer.Delete(ctx, commentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		logger.Log.Errorw("failed to delete comment", "err", err)
		return err
	}
	return nil
}

// ListByArticle returns the article's comments in creation order.
func (svc *CommentService) ListByArticle(ctx context.Context, viewerID *uuid.UUID, slugStr string) ([]models.CommentView, error) {
	meta, err := svc.articles.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if meta == nil {
		return nil, ErrNotFound
	}

	rows, err := svc.reader.ListByArticle(ctx, viewerID, meta.ArticleID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "err", err)
		return nil, err
	}

	views := make([]models.CommentView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].ToView())
	}
	return views, nil
}
