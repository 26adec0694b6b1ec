package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewCommentWriteRepository(db, nil)
	readRepo := NewCommentReadRepository(db)
	followRepo := NewFollowWriteRepository(db, nil)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")
	readerID := insertTestUser(t, db, "reader")
	articleID := insertTestArticle(t, db, authorID, "welcome", `[]`)

	assert.NoError(t, followRepo.Save(ctx, authorID, readerID))

	firstID, err := writeRepo.Save(ctx, articleID, authorID, "first comment")
	assert.NoError(t, err)
	secondID, err := writeRepo.Save(ctx, articleID, readerID, "second comment")
	assert.NoError(t, err)

	t.Run("ids come from a sequence", func(t *testing.T) {
		assert.Greater(t, secondID, firstID)
	})

	t.Run("GetByID", func(t *testing.T) {
		comment, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.NotNil(t, comment)
		assert.Equal(t, articleID, comment.ArticleID)
		assert.Equal(t, authorID, comment.UserID)
		assert.Equal(t, "first comment", comment.Body)
	})

	t.Run("missing comment is nil, not error", func(t *testing.T) {
		comment, err := readRepo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, comment)
	})

	t.Run("view carries viewer-relative flag", func(t *testing.T) {
		row, err := readRepo.GetViewByID(ctx, &readerID, firstID)
		assert.NoError(t, err)
		assert.NotNil(t, row)
		assert.Equal(t, "author", row.AuthorUsername)
		assert.True(t, row.FollowingAuthor)

		row, err = readRepo.GetViewByID(ctx, nil, firstID)
		assert.NoError(t, err)
		assert.False(t, row.FollowingAuthor)
	})

	t.Run("list in creation order", func(t *testing.T) {
		rows, err := readRepo.ListByArticle(ctx, nil, articleID)
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, firstID, rows[0].CommentID)
		assert.Equal(t, secondID, rows[1].CommentID)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, firstID))

		rows, err := readRepo.ListByArticle(ctx, nil, articleID)
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		err := writeRepo.Delete(ctx, firstID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
