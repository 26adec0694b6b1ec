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

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, viewerID *uuid.UUID, username string) (*models.Profile, error)
}

// Follower defines the interface that the service must implement.
type Follower interface {
	Follow(ctx context.Context, followerID uuid.UUID, username string) (*models.Profile, error)
}

// Unfollower defines the interface that the service must implement.
type Unfollower interface {
	Unfollow(ctx context.Context, followerID uuid.UUID, username string) (*models.Profile, error)
}

// NewProfileHandler returns an HTTP handler for fetching a profile.
// @Summary Get a user profile
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ProfileBody "Profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profiles/{username} [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var viewerID *uuid.UUID
		if userID, ok := middlewares.GetUserIDFromContext(r.Context()); ok {
			viewerID = &userID
		}

		profile, err := svc.Get(r.Context(), viewerID, chi.URLParam(r, "username"))
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

		writeJSON(w, http.StatusOK, ProfileBody{Profile: *profile})
	}
}

// NewFollowHandler returns an HTTP handler for following a user.
// @Summary Follow a user
// @Description Creates a follow edge. Following twice is rejected so the caller can tell "already following" from "now following".
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} handlers.ProfileBody "Profile with following=true"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Already following"
// @Failure 422 {object} handlers.ErrorResponse "Cannot follow yourself"
// @Router /profiles/{username}/follow [post]
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		profile, err := svc.Follow(r.Context(), userID, chi.URLParam(r, "username"))
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "user not found")
			case services.ErrSelfFollow:
				writeError(w, http.StatusUnprocessableEntity, "cannot follow yourself")
			case services.ErrAlreadyFollowing:
				writeError(w, http.StatusConflict, "already following")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileBody{Profile: *profile})
	}
}

// NewUnfollowHandler returns an HTTP handler for unfollowing a user.
// @Summary Unfollow a user
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} handlers.ProfileBody "Profile with following=false"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Not following"
// @Router /profiles/{username}/follow [delete]
func NewUnfollowHandler(svc Unfollower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		profile, err := svc.Unfollow(r.Context(), userID, chi.URLParam(r, "username"))
		if err != nil {
			switch err {
			case services.ErrNotFound:
				writeError(w, http.StatusNotFound, "user not found")
			case services.ErrNotFollowing:
				writeError(w, http.StatusConflict, "not following")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileBody{Profile: *profile})
	}
}
