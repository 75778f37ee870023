package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// bcryptCost balances hashing latency against brute-force resistance.
const bcryptCost = 12

type userService struct {
	repo         user.Repository
	jwtManager   *jwt.Manager
	accessExpiry time.Duration
}

// NewUserService creates the user service.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, accessExpiry time.Duration) user.Service {
	return &userService{
		repo:         repo,
		jwtManager:   jwtManager,
		accessExpiry: accessExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameAlreadyExists
	}

	exists, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	u, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.accessExpiry),
		User:        u.ToDTO(),
	}, nil
}

func (s *userService) IssueTokenPair(ctx context.Context, req user.LoginRequest) (*user.TokenPairResponse, error) {
	u, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.tokenPair(u.ID.String(), u.Username)
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*user.TokenPairResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Re-check the identity still exists before minting new tokens.
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	return s.tokenPair(u.ID.String(), u.Username)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// authenticate verifies the username/password pair.
// Unknown username and wrong password collapse into the same error so the
// response never reveals which one failed.
func (s *userService) authenticate(ctx context.Context, req user.LoginRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// bcrypt.CompareHashAndPassword is constant-time.
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return u, nil
}

func (s *userService) tokenPair(userID, username string) (*user.TokenPairResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &user.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.accessExpiry),
	}, nil
}
