package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, bio, image, password_hash, created_at, updated_at
		FROM "user"
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user get by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, bio, image, password_hash, created_at, updated_at
		FROM "user"
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user get by username",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIdentifier returns the user whose username or email equals the
// identifier, or nil if absent. Used by login.
func (r *UserReadRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, bio, image, password_hash, created_at, updated_at
		FROM "user"
		WHERE username = $1 OR email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, identifier)

	logger.Log.Infow("user get by identifier",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user row. Duplicate usernames and emails surface as
// ErrDuplicateUsername / ErrDuplicateEmail via the unique constraints.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO "user" (user_id, username, email, bio, image, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{user.UserID, user.Username, user.Email, user.Bio, user.Image, user.PasswordHash}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("user save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username, user.Email},
		"error", err,
	)

	return mapConstraint(err, map[string]error{
		"user_username_key": ErrDuplicateUsername,
		"user_email_key":    ErrDuplicateEmail,
	})
}

// Update applies a partial update; nil fields keep their current value.
// updated_at refreshes on every call.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) error {
	const query = `
		UPDATE "user"
		SET email = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    bio = COALESCE($4, bio),
		    image = COALESCE($5, image),
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, upd.Email, upd.PasswordHash, upd.Bio, upd.Image}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return mapConstraint(err, map[string]error{
			"user_email_key": ErrDuplicateEmail,
		})
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
