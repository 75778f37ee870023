package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
)

type commentService struct {
	repo     comment.Repository
	postRepo post.Repository // cross-domain: resolves slugs to posts
}

// NewCommentService creates the comment service.
func NewCommentService(repo comment.Repository, postRepo post.Repository) comment.Service {
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
	}
}

func (s *commentService) Create(ctx context.Context, postSlug string, req comment.CreateCommentRequest, authorID uuid.UUID) (*comment.Comment, error) {
	// Resolve the post before validating the body so a bad slug is a 404,
	// and before any write so nothing persists on failure.
	p, err := s.postRepo.GetBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &comment.Comment{
		ID:        uuid.New(),
		Body:      req.Body,
		AuthorID:  authorID, // authenticated caller, never client input
		PostID:    p.ID,     // resolved post, never client input
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *commentService) ListByPostSlug(ctx context.Context, postSlug string) ([]comment.Comment, error) {
	p, err := s.postRepo.GetBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByPostID(ctx, p.ID)
}

func (s *commentService) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, req comment.UpdateCommentRequest) (*comment.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the body is replaceable; author and post stay as created.
	c.Body = req.Body
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
