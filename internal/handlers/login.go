package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, identifier, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login.
// swagger:model LoginRequest
type LoginRequest struct {
	User struct {
		// Username or email
		// required: true
		// example: jake@jake.jake
		Email string `json:"email"`

		// Password
		// required: true
		// example: password
		Password string `json:"password"`
	} `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Authenticate a user
// @Description Verifies credentials and returns the user with a fresh token. The identifier may be a username or an email.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.UserBody "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		user, token, err := svc.Login(r.Context(), req.User.Email, req.User.Password)
		if err != nil {
			switch err {
			case services.ErrInvalidCredentials:
				writeError(w, http.StatusUnauthorized, "invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newUserBody(user, token))
	}
}
