package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for comments.
// Comments are hard-deleted; deleting a post removes its comments via the
// database cascade, so no orphan can reference a deleted post.
type Repository interface {
	// Create persists a new comment.
	Create(ctx context.Context, c *Comment) error

	// ListByPostID returns the comments of one post, oldest first.
	ListByPostID(ctx context.Context, postID uuid.UUID) ([]Comment, error)

	// GetByID returns ErrCommentNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// Update replaces the body of an existing comment.
	Update(ctx context.Context, c *Comment) error

	// Delete removes a comment. Returns ErrCommentNotFound when nothing
	// was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
