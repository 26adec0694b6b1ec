package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username, immutable
	Email        string    `json:"email" db:"email"`               // Unique email
	Bio          string    `json:"bio" db:"bio"`                   // Defaults to empty
	Image        *string   `json:"image" db:"image"`               // Optional image URL
	PasswordHash string    `json:"-" db:"password_hash"`           // Argon2id hash, never plaintext
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// UserUpdate is a partial update of the mutable user fields.
// Username is not here: identity fields are immutable after registration.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
	Bio          *string
	Image        *string
}
