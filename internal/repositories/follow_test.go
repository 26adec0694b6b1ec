package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFollowRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewFollowWriteRepository(db, nil)
	readRepo := NewFollowReadRepository(db)
	ctx := context.Background()

	celebID := insertTestUser(t, db, "celeb")
	fanID := insertTestUser(t, db, "fan")
	otherID := insertTestUser(t, db, "other")

	t.Run("save and exists", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, celebID, fanID))

		ok, err := readRepo.Exists(ctx, celebID, fanID)
		assert.NoError(t, err)
		assert.True(t, ok)

		// Direction matters
		ok, err = readRepo.Exists(ctx, fanID, celebID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate edge", func(t *testing.T) {
		err := writeRepo.Save(ctx, celebID, fanID)
		assert.ErrorIs(t, err, ErrDuplicateFollow)
	})

	t.Run("list followers and following", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, celebID, otherID))

		followers, err := readRepo.ListFollowers(ctx, celebID)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{fanID, otherID}, followers)

		following, err := readRepo.ListFollowing(ctx, fanID)
		assert.NoError(t, err)
		assert.Len(t, following, 1)
		assert.Equal(t, celebID, following[0])
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, celebID, fanID))

		ok, err := readRepo.Exists(ctx, celebID, fanID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete missing edge", func(t *testing.T) {
		err := writeRepo.Delete(ctx, celebID, fanID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
