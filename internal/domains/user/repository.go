package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users.
// All lookups exclude soft-deleted rows.
type Repository interface {
	// Create persists a new user.
	// Returns ErrUsernameAlreadyExists / ErrEmailAlreadyExists on conflicts.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when absent or soft-deleted.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername is used by login. Returns ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername reports whether a live user holds the username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a live user holds the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
