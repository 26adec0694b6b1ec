package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/conduit-core/internal/models"
)

// UserPayload is the authenticated user representation, token included.
// swagger:model UserPayload
type UserPayload struct {
	Email    string  `json:"email"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Bio      string  `json:"bio"`
	Image    *string `json:"image"`
}

// UserBody wraps a user payload.
// swagger:model UserBody
type UserBody struct {
	User UserPayload `json:"user"`
}

// ProfileBody wraps a profile payload.
// swagger:model ProfileBody
type ProfileBody struct {
	Profile models.Profile `json:"profile"`
}

// ArticleResponseBody wraps a single article.
// swagger:model ArticleResponseBody
type ArticleResponseBody struct {
	Article models.ArticleView `json:"article"`
}

// ArticlesBody wraps an article listing.
// swagger:model ArticlesBody
type ArticlesBody struct {
	Articles      []models.ArticleView `json:"articles"`
	ArticlesCount int                  `json:"articlesCount"`
}

// CommentResponseBody wraps a single comment.
// swagger:model CommentResponseBody
type CommentResponseBody struct {
	Comment models.CommentView `json:"comment"`
}

// CommentsBody wraps a comment listing.
// swagger:model CommentsBody
type CommentsBody struct {
	Comments []models.CommentView `json:"comments"`
}

// TagsBody wraps the tag listing.
// swagger:model TagsBody
type TagsBody struct {
	Tags []string `json:"tags"`
}

// ErrorResponse is the uniform error payload.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

func newUserBody(user *models.UserDB, token string) UserBody {
	return UserBody{User: UserPayload{
		Email:    user.Email,
		Token:    token,
		Username: user.Username,
		Bio:      user.Bio,
		Image:    user.Image,
	}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
