package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment record in the database.
type CommentDB struct {
	CommentID int64     `db:"comment_id"` // Auto-incrementing primary key
	ArticleID uuid.UUID `db:"article_id"` // Owning article, immutable
	UserID    uuid.UUID `db:"user_id"`    // Author, immutable
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CommentRow is a comment joined with its author and viewer-relative flags.
type CommentRow struct {
	CommentID       int64     `db:"comment_id"`
	Body            string    `db:"body"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	AuthorUsername  string    `db:"author_username"`
	AuthorBio       string    `db:"author_bio"`
	AuthorImage     *string   `db:"author_image"`
	FollowingAuthor bool      `db:"following_author"`
}

// CommentView is the assembled comment representation returned by services.
type CommentView struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"body"`
	Author    Profile   `json:"author"`
}

// ToView assembles the author profile.
func (r *CommentRow) ToView() CommentView {
	return CommentView{
		ID:        r.CommentID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Body:      r.Body,
		Author: Profile{
			Username:  r.AuthorUsername,
			Bio:       r.AuthorBio,
			Image:     r.AuthorImage,
			Following: r.FollowingAuthor,
		},
	}
}
