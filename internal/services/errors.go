package services

import "errors"

// Domain error taxonomy. Handlers switch on these; anything else is a
// storage failure and maps to an internal error at the transport layer.
var (
	// ErrValidation reports malformed or empty input.
	ErrValidation = errors.New("validation failed")

	// Duplicate-constraint family: surfaced from unique indexes, never
	// from application-level pre-checks.
	ErrUsernameTaken    = errors.New("username already taken")
	ErrEmailTaken       = errors.New("email already taken")
	ErrSlugTaken        = errors.New("article slug already taken")
	ErrAlreadyFollowing = errors.New("already following user")
	ErrAlreadyFavorited = errors.New("article already favorited")

	// ErrNotFound reports a missing referenced entity.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthor reports that the actor does not own the entity.
	ErrNotAuthor = errors.New("actor is not the author")

	// ErrSelfFollow reports a follow where follower and followee match.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrNotFollowing / ErrNotFavorited report removal of an absent edge.
	ErrNotFollowing = errors.New("not following user")
	ErrNotFavorited = errors.New("article not favorited")

	// ErrInvalidCredentials reports an authentication failure without
	// revealing whether the identifier or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
