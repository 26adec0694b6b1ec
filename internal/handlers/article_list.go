package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/models"
)

// ArticleLister defines the interface that the service must implement.
type ArticleLister interface {
	List(ctx context.Context, viewerID *uuid.UUID, filter models.ArticleFilter) ([]models.ArticleView, error)
}

// ArticleFeeder defines the interface that the service must implement.
type ArticleFeeder interface {
	Feed(ctx context.Context, viewerID uuid.UUID, limit, offset int64) ([]models.ArticleView, error)
}

// NewListArticlesHandler returns an HTTP handler for listing articles.
// @Summary List articles
// @Description Lists articles, most recent first, optionally filtered by author, tag or favoriting user.
// @Tags articles
// @Produce json
// @Param author query string false "Filter by author username"
// @Param tag query string false "Filter by tag"
// @Param favorited query string false "Filter by favoriting username"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.ArticlesBody "Articles"
// @Router /articles [get]
func NewListArticlesHandler(svc ArticleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var viewerID *uuid.UUID
		if userID, ok := middlewares.GetUserIDFromContext(r.Context()); ok {
			viewerID = &userID
		}

		filter := models.ArticleFilter{
			Author:      optionalQuery(r, "author"),
			Tag:         optionalQuery(r, "tag"),
			FavoritedBy: optionalQuery(r, "favorited"),
			Limit:       queryInt(r, "limit"),
			Offset:      queryInt(r, "offset"),
		}

		articles, err := svc.List(r.Context(), viewerID, filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ArticlesBody{
			Articles:      articles,
			ArticlesCount: len(articles),
		})
	}
}

// NewFeedArticlesHandler returns an HTTP handler for the follow feed.
// @Summary List articles by followed authors
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.ArticlesBody "Articles"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /articles/feed [get]
func NewFeedArticlesHandler(svc ArticleFeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		articles, err := svc.Feed(r.Context(), userID, queryInt(r, "limit"), queryInt(r, "offset"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ArticlesBody{
			Articles:      articles,
			ArticlesCount: len(articles),
		})
	}
}

func optionalQuery(r *http.Request, key string) *string {
	if value := r.URL.Query().Get(key); value != "" {
		return &value
	}
	return nil
}

func queryInt(r *http.Request, key string) int64 {
	value, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
