package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/infrastructure/database"
)

// missCache is a cache that never hits, so every read goes to the database.
type missCache struct{}

func (missCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (missCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (missCache) Delete(context.Context, ...string) error { return nil }

func (missCache) Ping(context.Context) error { return nil }

// testPool connects to the database named by TEST_DATABASE_URL and applies
// the schema. Tests are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	db := &database.PostgresDB{Pool: pool}
	require.NoError(t, db.Migrate(ctx))

	return pool
}

func insertUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		id, "u_"+id.String()[:8], id.String()[:8]+"@example.com", "x")
	require.NoError(t, err)
	return id
}

func insertComment(t *testing.T, pool *pgxpool.Pool, postID, authorID uuid.UUID, body string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, body, author_id, post_id) VALUES ($1, $2, $3, $4)`,
		uuid.New(), body, authorID, postID)
	require.NoError(t, err)
}

func newPost(authorID uuid.UUID) *post.Post {
	id := uuid.New()
	now := time.Now()
	return &post.Post{
		ID:        id,
		Title:     "Title " + id.String(),
		Slug:      "slug-" + id.String(),
		Body:      "This is long enough body.",
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetBySlugIncludesCommentCount(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool, missCache{})
	ctx := context.Background()

	author := insertUser(t, pool)
	p := newPost(author)
	require.NoError(t, repo.Create(ctx, p))

	insertComment(t, pool, p.ID, author, "First comment")
	insertComment(t, pool, p.ID, author, "Second comment")

	got, err := repo.GetBySlug(ctx, p.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)
}

func TestDeleteBySlugCascadesComments(t *testing.T) {
	pool := testPool(t)
	repo := NewPostgresRepository(pool, missCache{})
	ctx := context.Background()

	author := insertUser(t, pool)
	p := newPost(author)
	require.NoError(t, repo.Create(ctx, p))

	insertComment(t, pool, p.ID, author, "First comment")
	insertComment(t, pool, p.ID, author, "Second comment")

	require.NoError(t, repo.DeleteBySlug(ctx, p.Slug))

	var remaining int
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1`, p.ID).Scan(&remaining)
	require.NoError(t, err)
	assert.Zero(t, remaining, "comments must be removed with their post")

	_, err = repo.GetBySlug(ctx, p.Slug)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
