package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// Favoriter defines the interface that the service must implement.
type Favoriter interface {
	Favorite(ctx context.Context, userID uuid.UUID, slug string) (*models.ArticleView, error)
}

// Unfavoriter defines the interface that the service must implement.
type Unfavoriter interface {
	Unfavorite(ctx context.Context, userID uuid.UUID, slug string) (*models.ArticleView, error)
}

// NewFavoriteArticleHandler returns an HTTP handler for favoriting.
// @Summary Favorite an article
// @Description Adds the article to the caller's favorites. Favoriting twice is rejected.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.ArticleResponseBody "Article with refreshed favorite state"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 409 {object} handlers.ErrorResponse "Already favorited"
// @Router /articles/{slug}/favorite [post]
func NewFavoriteArticleHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		article, err := svc.Favorite(r.Context(), userID, chi.URLParam(r, "slug"))
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "article not found")
			case services.ErrAlreadyFavorited:
				writeError(w, http.StatusConflict, "already favorited")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponseBody{Article: *article})
	}
}

// NewUnfavoriteArticleHandler returns an HTTP handler for unfavoriting.
// @Summary Unfavorite an article
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.ArticleResponseBody "Article with refreshed favorite state"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 409 {object} handlers.ErrorResponse "Not favorited"
// @Router /articles/{slug}/favorite [delete]
func NewUnfavoriteArticleHandler(svc Unfavoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		article, err := svc.Unfavorite(r.Context(), userID, chi.URLParam(r, "slug"))
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "article not found")
			case services.ErrNotFavorited:
				writeError(w, http.StatusConflict, "not favorited")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponseBody{Article: *article})
	}
}
