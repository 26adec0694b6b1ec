package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema is the full relational schema. Uniqueness rules live here as
// constraints so concurrent duplicate inserts resolve in the database,
// not in application code. Constraint names are part of the contract:
// repositories map unique violations to domain errors by name.
const Schema = `
CREATE TABLE IF NOT EXISTS "user" (
	user_id UUID PRIMARY KEY,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	bio TEXT NOT NULL DEFAULT '',
	image VARCHAR(500),
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT user_username_key UNIQUE (username),
	CONSTRAINT user_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS follow (
	followed_user_id UUID NOT NULL REFERENCES "user" (user_id),
	following_user_id UUID NOT NULL REFERENCES "user" (user_id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT follow_pkey PRIMARY KEY (followed_user_id, following_user_id)
);

CREATE TABLE IF NOT EXISTS article (
	article_id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES "user" (user_id),
	slug VARCHAR(255) NOT NULL,
	title VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	body TEXT NOT NULL,
	tag_list JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT article_slug_key UNIQUE (slug)
);

CREATE TABLE IF NOT EXISTS article_favorite (
	article_id UUID NOT NULL REFERENCES article (article_id),
	user_id UUID NOT NULL REFERENCES "user" (user_id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT article_favorite_pkey PRIMARY KEY (article_id, user_id)
);

CREATE TABLE IF NOT EXISTS article_comment (
	comment_id BIGSERIAL PRIMARY KEY,
	article_id UUID NOT NULL REFERENCES article (article_id),
	user_id UUID NOT NULL REFERENCES "user" (user_id),
	body TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema. Statements are idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
