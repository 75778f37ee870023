package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one post. Author and post references are
// server-assigned at creation and immutable afterwards.
type Comment struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Body     string    `db:"body" json:"body"`
	AuthorID uuid.UUID `db:"author_id" json:"author"`
	PostID   uuid.UUID `db:"post_id" json:"post"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
