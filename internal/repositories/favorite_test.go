package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewFavoriteWriteRepository(db, nil)
	readRepo := NewFavoriteReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")
	fanID := insertTestUser(t, db, "fan")
	otherID := insertTestUser(t, db, "other")
	articleID := insertTestArticle(t, db, authorID, "welcome", `[]`)

	t.Run("save and exists", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, articleID, fanID))

		ok, err := readRepo.Exists(ctx, articleID, fanID)
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = readRepo.Exists(ctx, articleID, otherID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("duplicate edge", func(t *testing.T) {
		err := writeRepo.Save(ctx, articleID, fanID)
		assert.ErrorIs(t, err, ErrDuplicateFavorite)
	})

	t.Run("count", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, articleID, otherID))

		count, err := readRepo.Count(ctx, articleID)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, articleID, fanID))

		count, err := readRepo.Count(ctx, articleID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete missing edge", func(t *testing.T) {
		err := writeRepo.Delete(ctx, articleID, fanID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
