package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ArticleDB represents an article record in the database.
type ArticleDB struct {
	ArticleID   uuid.UUID `db:"article_id"` // Primary key
	UserID      uuid.UUID `db:"user_id"`    // Author, immutable
	Slug        string    `db:"slug"`       // Unique, derived from title
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Body        string    `db:"body"`
	TagList     []byte    `db:"tag_list"` // JSON array of tags
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ArticleMeta is the minimal projection used for lookups and authorization.
type ArticleMeta struct {
	ArticleID uuid.UUID `db:"article_id"`
	UserID    uuid.UUID `db:"user_id"`
}

// ArticleUpdate is a partial update of an article. A non-nil Slug
// accompanies a title change.
type ArticleUpdate struct {
	Slug        *string
	Title       *string
	Description *string
	Body        *string
	TagList     []byte
}

// ArticleFilter narrows article listings. Nil fields are not applied.
type ArticleFilter struct {
	Author      *string
	Tag         *string
	FavoritedBy *string
	Limit       int64
	Offset      int64
}

// ArticleRow is an article joined with its author and viewer-relative
// flags, as selected in one query.
type ArticleRow struct {
	ArticleID       uuid.UUID `db:"article_id"`
	Slug            string    `db:"slug"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Body            string    `db:"body"`
	TagList         []byte    `db:"tag_list"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	Favorited       bool      `db:"favorited"`
	FavoritesCount  int64     `db:"favorites_count"`
	AuthorUsername  string    `db:"author_username"`
	AuthorBio       string    `db:"author_bio"`
	AuthorImage     *string   `db:"author_image"`
	FollowingAuthor bool      `db:"following_author"`
}

// ArticleView is the assembled article representation returned by services.
type ArticleView struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int64     `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ToView unpacks the tag JSON and assembles the author profile.
func (r *ArticleRow) ToView() ArticleView {
	var tags []string
	if err := json.Unmarshal(r.TagList, &tags); err != nil || tags == nil {
		tags = []string{}
	}
	return ArticleView{
		Slug:           r.Slug,
		Title:          r.Title,
		Description:    r.Description,
		Body:           r.Body,
		TagList:        tags,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Favorited:      r.Favorited,
		FavoritesCount: r.FavoritesCount,
		Author: Profile{
			Username:  r.AuthorUsername,
			Bio:       r.AuthorBio,
			Image:     r.AuthorImage,
			Following: r.FollowingAuthor,
		},
	}
}
