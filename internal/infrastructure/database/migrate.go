package database

import (
	"context"
	"fmt"
)

// schema is idempotent: every statement guards with IF NOT EXISTS so it can
// run on each startup.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	deleted_at    TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username) WHERE deleted_at IS NULL;
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS posts (
	id         UUID PRIMARY KEY,
	title      TEXT NOT NULL,
	slug       TEXT NOT NULL,
	body       TEXT NOT NULL,
	author_id  UUID NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS posts_title_key ON posts (title);
CREATE UNIQUE INDEX IF NOT EXISTS posts_slug_key ON posts (slug);
CREATE INDEX IF NOT EXISTS posts_author_idx ON posts (author_id);

CREATE TABLE IF NOT EXISTS comments (
	id         UUID PRIMARY KEY,
	body       TEXT NOT NULL,
	author_id  UUID NOT NULL REFERENCES users(id),
	post_id    UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS comments_post_idx ON comments (post_id);
CREATE INDEX IF NOT EXISTS comments_author_idx ON comments (author_id);
`

// Migrate applies the schema at startup.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
