package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/conduit-core/internal/logger"
	"github.com/sbilibin2017/conduit-core/internal/models"
	"github.com/sbilibin2017/conduit-core/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, string, error)
}

// RegisterRequest represents the JSON body for user registration.
// swagger:model RegisterRequest
type RegisterRequest struct {
	User struct {
		// Username
		// required: true
		// example: jake
		Username string `json:"username"`

		// Email
		// required: true
		// example: jake@jake.jake
		Email string `json:"email"`

		// Password
		// required: true
		// example: password
		Password string `json:"password"`
	} `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.UserBody "User successfully registered"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Failure 422 {object} handlers.ErrorResponse "Invalid request"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		user, token, err := svc.Register(r.Context(), req.User.Username, req.User.Email, req.User.Password)
		if err != nil {
			switch err {
			case services.ErrValidation:
				writeError(w, http.StatusUnprocessableEntity, "username, email and password are required")
			case services.ErrUsernameTaken:
				writeError(w, http.StatusConflict, "username already taken")
			case services.ErrEmailTaken:
				writeError(w, http.StatusConflict, "email already taken")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newUserBody(user, token))
	}
}
