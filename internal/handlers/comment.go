package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// CommentAdder defines the interface that the service must implement.
type CommentAdder interface {
	Add(ctx context.Context, slug string, authorID uuid.UUID, body string) (*models.CommentView, error)
}

// CommentLister defines the interface that the service must implement.
type CommentLister interface {
	ListByArticle(ctx context.Context, viewerID *uuid.UUID, slug string) ([]models.CommentView, error)
}

// CommentRemover defines the interface that the service must implement.
type CommentRemover interface {
	Remove(ctx context.Context, slug string, commentID int64, requesterID uuid.UUID) error
}

// AddCommentRequest represents the JSON body for adding a comment.
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	Comment struct {
		// Body
		// required: true
		// example: Great write-up!
		Body string `json:"body"`
	} `json:"comment"`
}

// NewAddCommentHandler returns an HTTP handler for adding a comment.
// @Summary Add a comment to an article
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Param addCommentRequest body handlers.AddCommentRequest true "Comment request"
// @Success 201 {object} handlers.CommentResponseBody "Created comment"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 422 {object} handlers.ErrorResponse "Empty comment body"
// @Router /articles/{slug}/comments [post]
func NewAddCommentHandler(svc CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		comment, err := svc.Add(r.Context(), chi.URLParam(r, "slug"), userID, req.Comment.Body)
		if err != nil {
			switch err {
			case services.ErrValidation:
				writeError(w, http.StatusUnprocessableEntity, "comment body is required")
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "article not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CommentResponseBody{Comment: *comment})
	}
}

// NewListCommentsHandler returns an HTTP handler for listing comments.
// @Summary List comments on an article
// @Description Returns comments in the order they were posted.
// @Tags comments
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} handlers.CommentsBody "Comments"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Router /articles/{slug}/comments [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var viewerID *uuid.UUID
		if userID, ok := middlewares.GetUserIDFromContext(r.Context()); ok {
			viewerID = &userID
		}

		comments, err := svc.ListByArticle(r.Context(), viewerID, chi.URLParam(r, "slug"))
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

		writeJSON(w, http.StatusOK, CommentsBody{Comments: comments})
	}
}

// NewDeleteCommentHandler returns an HTTP handler for deleting a comment.
// @Summary Delete a comment
// @Description Only the comment author may delete. The comment must belong to the addressed article.
// @Tags comments
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Param id path int true "Comment ID"
// @Success 204 "Comment deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the comment author"
// @Failure 404 {object} handlers.ErrorResponse "Article or comment not found"
// @Router /articles/{slug}/comments/{id} [delete]
func NewDeleteCommentHandler(svc CommentRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		commentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid comment id")
			return
		}

		err = svc.Remove(r.Context(), chi.URLParam(r, "slug"), commentID, userID)
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "comment not found")
			case services.ErrNotAuthor:
				writeError(w, http.StatusForbidden, "not the comment author")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
