package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/repositories"
)

// FavoriteReader defines read-only operations on favorite edges.
type FavoriteReader interface {
	Count(ctx context.Context, articleID uuid.UUID) (int64, error)
	Exists(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
}

// FavoriteWriter defines write operations on favorite edges.
type FavoriteWriter interface {
	Save(ctx context.Context, articleID, userID uuid.UUID) error
	Delete(ctx context.Context, articleID, userID uuid.UUID) error
}

// FavoriteService handles favoriting articles.
type FavoriteService struct {
	articles ArticleReader
	reader   FavoriteReader
	writer   FavoriteWriter
}

// NewFavoriteService creates a new FavoriteService instance.
func NewFavoriteService(articles ArticleReader, reader FavoriteReader, writer FavoriteWriter) *FavoriteService {
	return &FavoriteService{articles: articles, reader: reader, writer: writer}
}

// Favorite adds the article to the user's favorites and returns the
// refreshed article view. A second favorite of the same pair is
// rejected, not ignored.
func (svc *FavoriteService) Favorite(ctx context.Context, userID uuid.UUID, slugStr string) (*models.ArticleView, error) {
	meta, err := svc.articles.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if meta == nil {
		return nil, ErrNotFound
	}

	if err := svc.writer.Save(ctx, meta.ArticleID, userID); err != nil {
		if errors.Is(err, repositories.ErrDuplicateFavorite) {
			return nil, ErrAlreadyFavorited
		}
		logger.Log.Errorw("failed to save favorite edge", "err", err)
		return nil, err
	}

	return svc.view(ctx, userID, meta.ArticleID)
}

// Unfavorite removes the article from the user's favorites.
func (svc *FavoriteService) Unfavorite(ctx context.Context, userID uuid.UUID, slugStr string) (*models.ArticleView, error) {
	meta, err := svc.articles.GetMetaBySlug(ctx, slugStr)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if meta == nil {
		return nil, ErrNotFound
	}

	if err := svc.writer.Delete(ctx, meta.ArticleID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFavorited
		}
		logger.Log.Errorw("failed to delete favorite edge", "err", err)
		return nil, err
	}

	return svc.view(ctx, userID, meta.ArticleID)
}

// Count returns the number of users who favorited the article.
func (svc *FavoriteService) Count(ctx context.Context, articleID uuid.UUID) (int64, error) {
	return svc.reader.Count(ctx, articleID)
}

// IsFavoritedBy reports whether the user has favorited the article.
func (svc *FavoriteService) IsFavoritedBy(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	return svc.reader.Exists(ctx, articleID, userID)
}

func (svc *FavoriteService) view(ctx context.Context, userID, articleID uuid.UUID) (*models.ArticleView, error) {
	row, err := svc.articles.GetViewByID(ctx, &userID, articleID)
	if err != nil {
		logger.Log.Errorw("failed to get article", "err", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	view := row.ToView()
	return &view, nil
}
