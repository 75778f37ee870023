package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for comments.
type Service interface {
	// Create attaches a comment to the post behind postSlug, authored by
	// the authenticated caller. Fails with post.ErrPostNotFound when the
	// slug does not resolve; no comment row is created in that case.
	Create(ctx context.Context, postSlug string, req CreateCommentRequest, authorID uuid.UUID) (*Comment, error)

	// ListByPostSlug returns the comments of the post behind postSlug.
	// Fails with post.ErrPostNotFound when the slug does not resolve.
	ListByPostSlug(ctx context.Context, postSlug string) ([]Comment, error)

	// GetByID resolves a single comment.
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// Update replaces the comment body. Author and post are immutable.
	Update(ctx context.Context, id uuid.UUID, req UpdateCommentRequest) (*Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
