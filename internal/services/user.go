package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/password"
	"github.com/sbilibin2017/conduit-core/internal/repositories"
)

// UserService handles reading and updating user records.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Update applies a partial profile update. Username is immutable; a
// changed email re-checks uniqueness through the constraint; a changed
// password is re-hashed before persisting.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, email, pass, bio, image *string) (*models.UserDB, error) {
	upd := models.UserUpdate{
		Email: email,
		Bio:   bio,
		Image: image,
	}

	if pass != nil {
		if *pass == "" {
			return nil, ErrValidation
		}
		hash, err := password.Hash(*pass)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	if err := svc.writer.Update(ctx, userID, upd); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}

	return svc.GetByID(ctx, userID)
}
