package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/conduit-core/internal/models"
)

func TestArticleWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewArticleWriteRepository(db, nil)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")

	article := models.ArticleDB{
		ArticleID:   uuid.New(),
		UserID:      authorID,
		Slug:        "welcome",
		Title:       "Welcome",
		Description: "desc",
		Body:        "body",
		TagList:     []byte(`["go","intro"]`),
	}

	t.Run("inserts a row", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, article))

		var slug string
		err := db.Get(&slug, `SELECT slug FROM article WHERE article_id=$1`, article.ArticleID)
		assert.NoError(t, err)
		assert.Equal(t, "welcome", slug)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		dup := article
		dup.ArticleID = uuid.New()

		err := repo.Save(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})
}

func TestArticleReadRepository_Views(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewArticleReadRepository(db)
	followRepo := NewFollowWriteRepository(db, nil)
	favoriteRepo := NewFavoriteWriteRepository(db, nil)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")
	viewerID := insertTestUser(t, db, "viewer")
	articleID := insertTestArticle(t, db, authorID, "welcome", `["go"]`)

	assert.NoError(t, followRepo.Save(ctx, authorID, viewerID))
	assert.NoError(t, favoriteRepo.Save(ctx, articleID, viewerID))

	t.Run("GetMetaBySlug", func(t *testing.T) {
		meta, err := readRepo.GetMetaBySlug(ctx, "welcome")
		assert.NoError(t, err)
		assert.NotNil(t, meta)
		assert.Equal(t, articleID, meta.ArticleID)
		assert.Equal(t, authorID, meta.UserID)
	})

	t.Run("missing slug is nil, not error", func(t *testing.T) {
		meta, err := readRepo.GetMetaBySlug(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, meta)
	})

	t.Run("view carries viewer-relative flags", func(t *testing.T) {
		row, err := readRepo.GetViewBySlug(ctx, &viewerID, "welcome")
		assert.NoError(t, err)
		assert.NotNil(t, row)
		assert.True(t, row.Favorited)
		assert.True(t, row.FollowingAuthor)
		assert.Equal(t, int64(1), row.FavoritesCount)
		assert.Equal(t, "author", row.AuthorUsername)
	})

	t.Run("anonymous view has no flags", func(t *testing.T) {
		row, err := readRepo.GetViewBySlug(ctx, nil, "welcome")
		assert.NoError(t, err)
		assert.NotNil(t, row)
		assert.False(t, row.Favorited)
		assert.False(t, row.FollowingAuthor)
		assert.Equal(t, int64(1), row.FavoritesCount)
	})
}

func TestArticleReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewArticleReadRepository(db)
	favoriteRepo := NewFavoriteWriteRepository(db, nil)
	ctx := context.Background()

	aliceID := insertTestUser(t, db, "alice")
	bobID := insertTestUser(t, db, "bob")

	firstID := insertTestArticle(t, db, aliceID, "first", `["go","db"]`)
	insertTestArticle(t, db, aliceID, "second", `["go"]`)
	insertTestArticle(t, db, bobID, "third", `["rust"]`)

	// Pin creation times so the newest-first ordering is deterministic.
	_, err := db.Exec(`UPDATE article SET created_at = NOW() - interval '2 hour' WHERE slug = 'first'`)
	assert.NoError(t, err)
	_, err = db.Exec(`UPDATE article SET created_at = NOW() - interval '1 hour' WHERE slug = 'second'`)
	assert.NoError(t, err)

	assert.NoError(t, favoriteRepo.Save(ctx, firstID, bobID))

	t.Run("no filter returns newest first", func(t *testing.T) {
		rows, err := readRepo.List(ctx, nil, models.ArticleFilter{Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Equal(t, "third", rows[0].Slug)
		assert.Equal(t, "first", rows[2].Slug)
	})

	t.Run("filter by author", func(t *testing.T) {
		author := "alice"
		rows, err := readRepo.List(ctx, nil, models.ArticleFilter{Author: &author, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("filter by tag", func(t *testing.T) {
		tag := "db"
		rows, err := readRepo.List(ctx, nil, models.ArticleFilter{Tag: &tag, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "first", rows[0].Slug)
	})

	t.Run("filter by favoriting user", func(t *testing.T) {
		favorited := "bob"
		rows, err := readRepo.List(ctx, nil, models.ArticleFilter{FavoritedBy: &favorited, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "first", rows[0].Slug)
	})

	t.Run("limit and offset", func(t *testing.T) {
		rows, err := readRepo.List(ctx, nil, models.ArticleFilter{Limit: 1, Offset: 1})
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "second", rows[0].Slug)
	})
}

func TestArticleReadRepository_Feed(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewArticleReadRepository(db)
	followRepo := NewFollowWriteRepository(db, nil)
	ctx := context.Background()

	aliceID := insertTestUser(t, db, "alice")
	bobID := insertTestUser(t, db, "bob")
	viewerID := insertTestUser(t, db, "viewer")

	insertTestArticle(t, db, aliceID, "from-alice", `[]`)
	insertTestArticle(t, db, bobID, "from-bob", `[]`)

	assert.NoError(t, followRepo.Save(ctx, aliceID, viewerID))

	rows, err := readRepo.Feed(ctx, viewerID, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "from-alice", rows[0].Slug)
	assert.True(t, rows[0].FollowingAuthor)
}

func TestArticleReadRepository_ListTags(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewArticleReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")
	insertTestArticle(t, db, authorID, "first", `["go","db"]`)
	insertTestArticle(t, db, authorID, "second", `["go","web"]`)

	tags, err := readRepo.ListTags(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "db", "web"}, tags)
}

func TestArticleWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewArticleWriteRepository(db, nil)
	readRepo := NewArticleReadRepository(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")
	articleID := insertTestArticle(t, db, authorID, "original", `[]`)
	insertTestArticle(t, db, authorID, "taken", `[]`)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		body := "new body"

		err := writeRepo.Update(ctx, articleID, models.ArticleUpdate{Body: &body})
		assert.NoError(t, err)

		row, err := readRepo.GetViewBySlug(ctx, nil, "original")
		assert.NoError(t, err)
		assert.Equal(t, "new body", row.Body)
		assert.Equal(t, "original", row.Title)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		slug := "taken"

		err := writeRepo.Update(ctx, articleID, models.ArticleUpdate{Slug: &slug})
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	t.Run("missing article", func(t *testing.T) {
		body := "body"

		err := writeRepo.Update(ctx, uuid.New(), models.ArticleUpdate{Body: &body})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestArticleWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewArticleWriteRepository(db, nil)
	favoriteRepo := NewFavoriteWriteRepository(db, nil)
	commentRepo := NewCommentWriteRepository(db, nil)
	ctx := context.Background()

	authorID := insertTestUser(t, db, "author")
	fanID := insertTestUser(t, db, "fan")
	articleID := insertTestArticle(t, db, authorID, "doomed", `[]`)

	assert.NoError(t, favoriteRepo.Save(ctx, articleID, fanID))
	_, err := commentRepo.Save(ctx, articleID, fanID, "nice")
	assert.NoError(t, err)

	t.Run("cascades to favorites and comments", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, articleID))

		var count int
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM article WHERE article_id=$1`, articleID))
		assert.Zero(t, count)
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM article_favorite WHERE article_id=$1`, articleID))
		assert.Zero(t, count)
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM article_comment WHERE article_id=$1`, articleID))
		assert.Zero(t, count)
	})

	t.Run("missing article", func(t *testing.T) {
		err := writeRepo.Delete(ctx, articleID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
