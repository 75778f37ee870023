package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/utils"
)

// topPostsLimit caps the top_posts view.
const topPostsLimit = 5

type postService struct {
	repo post.Repository
}

// NewPostService creates the post service.
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req post.CreatePostRequest, authorID uuid.UUID) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		return nil, validation.Errors{"slug": post.ErrEmptySlug}
	}

	now := time.Now()
	p := &post.Post{
		ID:        uuid.New(),
		Title:     req.Title,
		Slug:      slug,
		Body:      req.Body,
		AuthorID:  authorID, // always the authenticated caller, never client input
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Slug/title collisions are arbitrated by the database unique
	// constraints; concurrent writers lose with a validation error.
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *postService) List(ctx context.Context, topPosts bool) ([]post.Post, error) {
	if topPosts {
		return s.repo.ListTop(ctx, topPostsLimit)
	}
	return s.repo.List(ctx)
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *postService) Update(ctx context.Context, slug string, req post.UpdatePostRequest) (*post.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Partial replacement of content fields only. The author is not part
	// of the request type, so it cannot be overwritten from the outside.
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Body != nil {
		p.Body = *req.Body
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p, slug); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *postService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
