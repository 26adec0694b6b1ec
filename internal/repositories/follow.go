package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/conduit-core/internal/logger"
)

type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// Exists reports whether followingID follows followedID.
func (r *FollowReadRepository) Exists(ctx context.Context, followedID, followingID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM follow
			WHERE followed_user_id = $1 AND following_user_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followedID, followingID)

	logger.Log.Infow("follow exists",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{followedID, followingID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListFollowers returns the ids of users following userID.
func (r *FollowReadRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT following_user_id FROM follow WHERE followed_user_id = $1
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logger.Log.Infow("follow list followers",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	return ids, err
}

// ListFollowing returns the ids of users that userID follows.
func (r *FollowReadRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT followed_user_id FROM follow WHERE following_user_id = $1
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logger.Log.Infow("follow list following",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	return ids, err
}

type FollowWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFollowWriteRepository(db *sqlx.DB, txGetter TxGetter) *FollowWriteRepository {
	return &FollowWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the follow edge. A duplicate edge surfaces as
// ErrDuplicateFollow: the insert-or-reject happens in the database so
// concurrent duplicate follows resolve to exactly one winner.
func (r *FollowWriteRepository) Save(ctx context.Context, followedID, followingID uuid.UUID) error {
	const query = `
		INSERT INTO follow (followed_user_id, following_user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT ON CONSTRAINT follow_pkey DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, followedID, followingID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("follow save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{followedID, followingID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDuplicateFollow
	}
	return nil
}

// Delete removes the follow edge; sql.ErrNoRows if it did not exist.
func (r *FollowWriteRepository) Delete(ctx context.Context, followedID, followingID uuid.UUID) error {
	const query = `
		DELETE FROM follow
		WHERE followed_user_id = $1 AND following_user_id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, followedID, followingID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("follow delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{followedID, followingID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
