package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
)

const (
	uniqueViolation = "23505"

	slugCacheTTL = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the Postgres-backed post repository with a
// cache-aside layer on slug lookups.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func slugCacheKey(slug string) string {
	return fmt.Sprintf("post:slug:%s", slug)
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, title, slug, body, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Slug,
		p.Body,
		p.AuthorID,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {
		return mapUniqueViolation(err, "create post")
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]post.Post, error) {
	query := `
		SELECT p.id, p.title, p.slug, p.body, p.author_id,
		       COUNT(c.id) AS comment_count,
		       p.created_at, p.updated_at
		FROM posts p
		LEFT JOIN comments c ON c.post_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`

	return r.queryPosts(ctx, query)
}

func (r *postgresRepository) ListTop(ctx context.Context, limit int) ([]post.Post, error) {
	// Tie-break: descending comment count, then ascending id, so the
	// ordering is deterministic per execution.
	query := `
		SELECT p.id, p.title, p.slug, p.body, p.author_id,
		       COUNT(c.id) AS comment_count,
		       p.created_at, p.updated_at
		FROM posts p
		LEFT JOIN comments c ON c.post_id = p.id
		GROUP BY p.id
		ORDER BY comment_count DESC, p.id ASC
		LIMIT $1
	`

	return r.queryPosts(ctx, query, limit)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	cacheKey := slugCacheKey(slug)

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	// The detail view carries the same comment count as the list views.
	// A cached entry may lag new comments by at most slugCacheTTL.
	query := `
		SELECT id, title, slug, body, author_id,
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = posts.id) AS comment_count,
		       created_at, updated_at
		FROM posts
		WHERE slug = $1
	`

	p := &post.Post{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Body,
		&p.AuthorID,
		&p.CommentCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post by slug: %w", err)
	}

	// Best-effort cache fill; a cold cache is not an error.
	_ = r.cache.Set(ctx, cacheKey, p, slugCacheTTL)

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post, previousSlug string) error {
	query := `
		UPDATE posts
		SET title = $2, slug = $3, body = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.Title, p.Slug, p.Body, p.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err, "update post")
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, slugCacheKey(previousSlug), slugCacheKey(p.Slug))

	return nil
}

func (r *postgresRepository) DeleteBySlug(ctx context.Context, slug string) error {
	query := `DELETE FROM posts WHERE slug = $1`

	tag, err := r.pool.Exec(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, slugCacheKey(slug))

	return nil
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []post.Post{}
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Slug,
			&p.Body,
			&p.AuthorID,
			&p.CommentCount,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func mapUniqueViolation(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "slug") {
			return post.ErrSlugAlreadyExists
		}
		if strings.Contains(pgErr.ConstraintName, "title") {
			return post.ErrTitleAlreadyExists
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
