package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/password"
	"github.com/sbilibin2017/conduit-core/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	Update(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) error
}

// TokenGenerator defines an interface for issuing signed tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns it with a fresh token.
// Uniqueness of username and email is enforced by the storage
// constraints, not by a pre-check, so concurrent registrations with the
// same identity resolve to exactly one winner.
func (svc *AuthService) Register(ctx context.Context, username, email, pass string) (*models.UserDB, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || pass == "" || !strings.Contains(email, "@") {
		return nil, "", ErrValidation
	}

	hash, err := password.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		Bio:          "",
		PasswordHash: hash,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return nil, "", ErrUsernameTaken
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return nil, "", ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return &user, token, nil
}

// Login authenticates a user by username or email and returns a token.
// A missing user and a wrong password are indistinguishable to the
// caller.
func (svc *AuthService) Login(ctx context.Context, identifier, pass string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := password.Verify(pass, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}
