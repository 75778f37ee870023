package post

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for posts.
type Service interface {
	// Create persists a post authored by the authenticated caller.
	// The slug is derived from the title when absent.
	Create(ctx context.Context, req CreatePostRequest, authorID uuid.UUID) (*Post, error)

	// List returns all posts, or the top posts by comment count when
	// topPosts is set.
	List(ctx context.Context, topPosts bool) ([]Post, error)

	// GetBySlug resolves a post by slug.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// Update applies a partial update to the post behind slug.
	// The author is immutable.
	Update(ctx context.Context, slug string, req UpdatePostRequest) (*Post, error)

	// Delete removes the post behind slug and its comments.
	Delete(ctx context.Context, slug string) error
}
