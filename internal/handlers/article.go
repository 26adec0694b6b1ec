package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// ArticleCreator defines the interface that the service must implement.
type ArticleCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, title, description, body string, tags []string) (*models.ArticleView, error)
}

// ArticleGetter defines the interface that the service must implement.
type ArticleGetter interface {
	GetBySlug(ctx context.Context, viewerID *uuid.UUID, slug string) (*models.ArticleView, error)
}

// ArticleUpdater defines the interface that the service must implement.
type ArticleUpdater interface {
	Update(ctx context.Context, slug string, editorID uuid.UUID, title, description, body *string, tags []string) (*models.ArticleView, error)
}

// ArticleDeleter defines the interface that the service must implement.
type ArticleDeleter interface {
	Delete(ctx context.Context, slug string, requesterID uuid.UUID) error
}

// CreateArticleRequest represents the JSON body for article creation.
// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Article struct {
		// Title
		// required: true
		// example: How to train your dragon
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Body        string   `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

// UpdateArticleRequest represents the JSON body for an article update.
// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Article struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Body        *string  `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

// NewCreateArticleHandler returns an HTTP handler for article creation.
// @Summary Create an article
// @Description Creates an article with a slug derived from the title. Slug collisions are disambiguated with a short suffix.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createArticleRequest body handlers.CreateArticleRequest true "Article creation request"
// @Success 201 {object} handlers.ArticleResponseBody "Created article"
// @Failure 409 {object} handlers.ErrorResponse "Slug already taken"
// @Failure 422 {object} handlers.ErrorResponse "Invalid article fields"
// @Router /articles [post]
func NewCreateArticleHandler(svc ArticleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		article, err := svc.Create(r.Context(), userID,
			req.Article.Title, req.Article.Description, req.Article.Body, req.Article.TagList)
		if err != nil {
			switch err {
			case services.ErrValidation:
				writeError(w, http.StatusUnprocessableEntity, "title is required")
			case services.ErrSlugTaken:
				writeError(w, http.StatusConflict, "article slug already taken")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, ArticleResponseBody{Article: *article})
	}
}

// NewGetArticleHandler returns an HTTP handler for fetching an article.
// @Summary Get an article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.ArticleResponseBody "Article"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug} [get]
func NewGetArticleHandler(svc ArticleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var viewerID *uuid.UUID
		if userID, ok := middlewares.GetUserIDFromContext(r.Context()); ok {
			viewerID = &userID
		}

		article, err := svc.GetBySlug(r.Context(), viewerID, chi.URLParam(r, "slug"))
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "article not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponseBody{Article: *article})
	}
}

// NewUpdateArticleHandler returns an HTTP handler for article updates.
// @Summary Update an article
// @Description Partial update. Only the author may mutate; a title change regenerates the slug.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Param updateArticleRequest body handlers.UpdateArticleRequest true "Article update request"
// @Success 200 {object} handlers.ArticleResponseBody "Updated article"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 409 {object} handlers.ErrorResponse "Slug already taken"
// @Router /articles/{slug} [put]
func NewUpdateArticleHandler(svc ArticleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		article, err := svc.Update(r.Context(), chi.URLParam(r, "slug"), userID,
			req.Article.Title, req.Article.Description, req.Article.Body, req.Article.TagList)
		if err != nil {
			switch err {
			case services.ErrValidation:
				writeError(w, http.StatusUnprocessableEntity, "invalid article fields")
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "article not found")
			case services.ErrNotAuthor:
				writeError(w, http.StatusForbidden, "not the author")
			case services.ErrSlugTaken:
				writeError(w, http.StatusConflict, "article slug already taken")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ArticleResponseBody{Article: *article})
	}
}

// NewDeleteArticleHandler returns an HTTP handler for article deletion.
// @Summary Delete an article
// @Description Removes the article and cascades to its favorites and comments in one transaction.
// @Tags articles
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Success 204 "Article deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug} [delete]
func NewDeleteArticleHandler(svc ArticleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		err := svc.Delete(r.Context(), chi.URLParam(r, "slug"), userID)
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "article not found")
			case services.ErrNotAuthor:
				writeError(w, http.StatusForbidden, "not the author")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
