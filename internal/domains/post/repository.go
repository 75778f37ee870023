package post

import (
	"context"
)

// Repository is the data access contract for posts.
// Slug and title uniqueness are arbitrated by database constraints: a
// conflicting write fails with ErrSlugAlreadyExists / ErrTitleAlreadyExists
// and never silently merges.
type Repository interface {
	// Create persists a new post.
	Create(ctx context.Context, p *Post) error

	// List returns all posts with their comment counts, newest first.
	List(ctx context.Context) ([]Post, error)

	// ListTop returns at most limit posts ordered by descending comment
	// count; ties break by ascending post id so the order is stable.
	ListTop(ctx context.Context, limit int) ([]Post, error)

	// GetBySlug returns ErrPostNotFound when the slug does not resolve.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// Update replaces the content fields of an existing post.
	// previousSlug is the slug the post was loaded under, so stale cache
	// entries can be dropped even when the slug itself changed.
	Update(ctx context.Context, p *Post, previousSlug string) error

	// DeleteBySlug hard-deletes a post; its comments cascade.
	// Returns ErrPostNotFound when nothing was deleted.
	DeleteBySlug(ctx context.Context, slug string) error
}
