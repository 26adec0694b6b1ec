package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/middlewares"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, email, password, bio, image *string) (*models.UserDB, error)
}

// TokenIssuer re-issues a token for the current user response.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// UpdateUserRequest represents the JSON body for a profile update.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	User struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
	} `json:"user"`
}

// NewCurrentUserHandler returns an HTTP handler for the current user.
// @Summary Get the current user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserBody "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /user [get]
func NewCurrentUserHandler(svc UserGetter, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "user not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		token, err := tokens.Generate(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to generate JWT", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newUserBody(user, token))
	}
}

// NewUpdateUserHandler returns an HTTP handler for profile updates.
// @Summary Update the current user
// @Description Partial update of bio, image, email or password. Username is immutable.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateUserRequest body handlers.UpdateUserRequest true "User update request"
// @Success 200 {object} handlers.UserBody "Updated user"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 409 {object} handlers.ErrorResponse "Email already taken"
// @Router /user [put]
func NewUpdateUserHandler(svc UserUpdater, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		user, err := svc.Update(r.Context(), userID, req.User.Email, req.User.Password, req.User.Bio, req.User.Image)
		if err != nil {
			switch err {
			case services.ErrValidation:
				writeError(w, http.StatusUnprocessableEntity, "invalid user fields")
			case services.ErrEmailTaken:
				writeError(w, http.StatusConflict, "email already taken")
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "user not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		token, err := tokens.Generate(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to generate JWT", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, newUserBody(user, token))
	}
}
