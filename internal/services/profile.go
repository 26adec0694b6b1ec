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

// FollowReader defines read-only operations on the follow graph.
type FollowReader interface {
	Exists(ctx context.Context, followedID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// FollowWriter defines write operations on the follow graph.
type FollowWriter interface {
	Save(ctx context.Context, followedID, followingID uuid.UUID) error
	Delete(ctx context.Context, followedID, followingID uuid.UUID) error
}

// ProfileService handles public profiles and the follow graph.
type ProfileService struct {
	users  UserReader
	reader FollowReader
	writer FollowWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users UserReader, reader FollowReader, writer FollowWriter) *ProfileService {
	return &ProfileService{users: users, reader: reader, writer: writer}
}

// Get returns the profile of username as seen by viewerID (nil for an
// anonymous viewer).
func (svc *ProfileService) Get(ctx context.Context, viewerID *uuid.UUID, username string) (*models.Profile, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	following := false
	if viewerID != nil {
		following, err = svc.reader.Exists(ctx, user.UserID, *viewerID)
		if err != nil {
			logger.Log.Errorw("failed to check follow edge", "err", err)
			return nil, err
		}
	}

	return &models.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}, nil
}

// Follow creates a follow edge from followerID to the named user.
// Duplicates are rejected, not ignored, so callers can tell "already
// following" from "now following". Self-follows are rejected.
func (svc *ProfileService) Follow(ctx context.Context, followerID uuid.UUID, username string) (*models.Profile, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.UserID == followerID {
		return nil, ErrSelfFollow
	}

	if err := svc.writer.Save(ctx, user.UserID, followerID); err != nil {
		if errors.Is(err, repositories.ErrDuplicateFollow) {
			return nil, ErrAlreadyFollowing
		}
		logger.Log.Errorw("failed to save follow edge", "err", err)
		return nil, err
	}

	return &models.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: true,
	}, nil
}

// Unfollow removes the follow edge from followerID to the named user.
func (svc *ProfileService) Unfollow(ctx context.Context, followerID uuid.UUID, username string) (*models.Profile, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := svc.writer.Delete(ctx, user.UserID, followerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFollowing
		}
		logger.Log.Errorw("failed to delete follow edge", "err", err)
		return nil, err
	}

	return &models.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: false,
	}, nil
}

// IsFollowing reports whether followerID follows followeeID.
func (svc *ProfileService) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return svc.reader.Exists(ctx, followeeID, followerID)
}

// ListFollowers returns the ids of users following userID.
func (svc *ProfileService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return svc.reader.ListFollowers(ctx, userID)
}

// ListFollowing returns the ids of users that userID follows.
func (svc *ProfileService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return svc.reader.ListFollowing(ctx, userID)
}
