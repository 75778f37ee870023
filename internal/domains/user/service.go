package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for authentication and profiles.
type Service interface {
	// Register creates a new user with a bcrypt-hashed password.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and returns an access token.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// IssueTokenPair verifies credentials and returns an access/refresh pair.
	IssueTokenPair(ctx context.Context, req LoginRequest) (*TokenPairResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPairResponse, error)

	// GetProfile returns the public profile of a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
}
