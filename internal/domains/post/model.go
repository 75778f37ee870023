package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry addressed externally by its slug.
// Posts are hard-deleted; their comments cascade at the database level.
type Post struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Title    string    `db:"title" json:"title"`
	Slug     string    `db:"slug" json:"slug"`
	Body     string    `db:"body" json:"body"`
	AuthorID uuid.UUID `db:"author_id" json:"author"`

	// CommentCount is populated by list queries, not a stored column.
	CommentCount int `db:"-" json:"comment_count"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
