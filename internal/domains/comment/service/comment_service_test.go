package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
)

// fakeCommentRepo is an in-memory comment.Repository.
type fakeCommentRepo struct {
	comments map[uuid.UUID]*comment.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uuid.UUID]*comment.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *comment.Comment) error {
	clone := *c
	r.comments[c.ID] = &clone
	return nil
}

func (r *fakeCommentRepo) ListByPostID(_ context.Context, postID uuid.UUID) ([]comment.Comment, error) {
	out := []comment.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c *comment.Comment) error {
	existing, ok := r.comments[c.ID]
	if !ok {
		return comment.ErrCommentNotFound
	}
	*existing = *c
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.comments[id]; !ok {
		return comment.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// slugOnlyPostRepo resolves slugs against a fixed set of posts; every
// write operation is out of scope for these tests.
type slugOnlyPostRepo struct {
	bySlug map[string]*post.Post
}

func (r *slugOnlyPostRepo) Create(context.Context, *post.Post) error { panic("not used") }

func (r *slugOnlyPostRepo) List(context.Context) ([]post.Post, error) { panic("not used") }

func (r *slugOnlyPostRepo) ListTop(context.Context, int) ([]post.Post, error) { panic("not used") }

func (r *slugOnlyPostRepo) Update(context.Context, *post.Post, string) error { panic("not used") }

func (r *slugOnlyPostRepo) DeleteBySlug(context.Context, string) error { panic("not used") }

func (r *slugOnlyPostRepo) GetBySlug(_ context.Context, slug string) (*post.Post, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func newFixtures() (*fakeCommentRepo, *slugOnlyPostRepo, *post.Post) {
	p := &post.Post{
		ID:        uuid.New(),
		Title:     "Hello World",
		Slug:      "hello-world",
		Body:      "This is long enough body.",
		AuthorID:  uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return newFakeCommentRepo(), &slugOnlyPostRepo{bySlug: map[string]*post.Post{p.Slug: p}}, p
}

func TestCreateCommentAssignsAuthorAndPost(t *testing.T) {
	commentRepo, postRepo, p := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)
	author := uuid.New()

	created, err := svc.Create(context.Background(), "hello-world",
		comment.CreateCommentRequest{Body: "Nice post!"}, author)

	require.NoError(t, err)
	assert.Equal(t, author, created.AuthorID)
	assert.Equal(t, p.ID, created.PostID)
	assert.Equal(t, "Nice post!", created.Body)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	commentRepo, postRepo, _ := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.Create(context.Background(), "no-such-post",
		comment.CreateCommentRequest{Body: "Nice post!"}, uuid.New())

	assert.ErrorIs(t, err, post.ErrPostNotFound)
	assert.Empty(t, commentRepo.comments, "no comment row may be created")
}

func TestCreateCommentRejectsShortBody(t *testing.T) {
	commentRepo, postRepo, _ := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.Create(context.Background(), "hello-world",
		comment.CreateCommentRequest{Body: "Hey"}, uuid.New())

	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "body")
	assert.Empty(t, commentRepo.comments)
}

func TestListByPostSlugMissingPost(t *testing.T) {
	commentRepo, postRepo, _ := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.ListByPostSlug(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestListByPostSlugReturnsOnlyThatPost(t *testing.T) {
	commentRepo, postRepo, p := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.Create(context.Background(), "hello-world",
		comment.CreateCommentRequest{Body: "First comment"}, uuid.New())
	require.NoError(t, err)

	// A comment on an unrelated post must not appear.
	commentRepo.comments[uuid.New()] = &comment.Comment{
		ID:     uuid.New(),
		Body:   "Unrelated comment",
		PostID: uuid.New(),
	}

	comments, err := svc.ListByPostSlug(context.Background(), "hello-world")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, p.ID, comments[0].PostID)
}

func TestUpdateCommentKeepsAuthorAndPost(t *testing.T) {
	commentRepo, postRepo, p := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)
	author := uuid.New()

	created, err := svc.Create(context.Background(), "hello-world",
		comment.CreateCommentRequest{Body: "Original body"}, author)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID,
		comment.UpdateCommentRequest{Body: "Edited body"})
	require.NoError(t, err)

	assert.Equal(t, "Edited body", updated.Body)
	assert.Equal(t, author, updated.AuthorID)
	assert.Equal(t, p.ID, updated.PostID)
}

func TestDeleteMissingComment(t *testing.T) {
	commentRepo, postRepo, _ := newFixtures()
	svc := NewCommentService(commentRepo, postRepo)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}
