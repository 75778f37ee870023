package service

import (
	"context"
	"sort"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
)

// fakePostRepo is an in-memory post.Repository enforcing the same
// uniqueness rules as the database constraints.
type fakePostRepo struct {
	posts map[uuid.UUID]*post.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uuid.UUID]*post.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *post.Post) error {
	for _, existing := range r.posts {
		if existing.Slug == p.Slug {
			return post.ErrSlugAlreadyExists
		}
		if existing.Title == p.Title {
			return post.ErrTitleAlreadyExists
		}
	}
	clone := *p
	r.posts[p.ID] = &clone
	return nil
}

func (r *fakePostRepo) List(_ context.Context) ([]post.Post, error) {
	out := []post.Post{}
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) ListTop(_ context.Context, limit int) ([]post.Post, error) {
	out := []post.Post{}
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CommentCount != out[j].CommentCount {
			return out[i].CommentCount > out[j].CommentCount
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostRepo) GetBySlug(_ context.Context, slug string) (*post.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (r *fakePostRepo) Update(_ context.Context, p *post.Post, _ string) error {
	existing, ok := r.posts[p.ID]
	if !ok {
		return post.ErrPostNotFound
	}
	for _, other := range r.posts {
		if other.ID == p.ID {
			continue
		}
		if other.Slug == p.Slug {
			return post.ErrSlugAlreadyExists
		}
		if other.Title == p.Title {
			return post.ErrTitleAlreadyExists
		}
	}
	*existing = *p
	return nil
}

func (r *fakePostRepo) DeleteBySlug(_ context.Context, slug string) error {
	for id, p := range r.posts {
		if p.Slug == slug {
			delete(r.posts, id)
			return nil
		}
	}
	return post.ErrPostNotFound
}

func TestCreateDerivesSlugAndAssignsAuthor(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := uuid.New()

	p, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Hello World",
		Body:  "This is long enough body.",
	}, author)

	require.NoError(t, err)
	assert.Equal(t, "hello-world", p.Slug)
	assert.Equal(t, author, p.AuthorID)
	assert.Equal(t, "Hello World", p.Title)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	p, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Hello World",
		Slug:  "custom-slug",
		Body:  "This is long enough body.",
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "custom-slug", p.Slug)
}

func TestCreateRejectsShortTitle(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Hi",
		Body:  "This is long enough body.",
	}, uuid.New())

	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected field-level validation errors")
	assert.Contains(t, errs, "title")
}

func TestCreateRejectsShortBody(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Hello World",
		Body:  "short",
	}, uuid.New())

	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "body")
}

func TestCreateSlugCollisionLeavesExistingPostIntact(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	first, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "News!",
		Body:  "This is long enough body.",
	}, uuid.New())
	require.NoError(t, err)
	require.Equal(t, "news", first.Slug)

	// A different title slugifying to the same value collides.
	_, err = svc.Create(context.Background(), post.CreatePostRequest{
		Title: "News?!",
		Body:  "Another long enough body.",
	}, uuid.New())
	assert.ErrorIs(t, err, post.ErrSlugAlreadyExists)

	// The first post is still retrievable and unchanged.
	got, err := svc.GetBySlug(context.Background(), "news")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "News!", got.Title)
}

func TestListTopReturnsAtMostFiveByCommentCount(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	for i, count := range []int{3, 9, 1, 7, 5, 0, 2} {
		p, err := svc.Create(context.Background(), post.CreatePostRequest{
			Title: "Post number " + string(rune('A'+i)),
			Body:  "This is long enough body.",
		}, uuid.New())
		require.NoError(t, err)
		repo.posts[p.ID].CommentCount = count
	}

	top, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, top, 5)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].CommentCount, top[i].CommentCount)
	}
	assert.Equal(t, 9, top[0].CommentCount)
}

func TestUpdateIsPartialAndKeepsAuthor(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	author := uuid.New()

	created, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Hello World",
		Body:  "This is long enough body.",
	}, author)
	require.NoError(t, err)

	newBody := "A different long enough body."
	updated, err := svc.Update(context.Background(), created.Slug, post.UpdatePostRequest{
		Body: &newBody,
	})
	require.NoError(t, err)

	assert.Equal(t, newBody, updated.Body)
	assert.Equal(t, "Hello World", updated.Title)
	assert.Equal(t, author, updated.AuthorID)
}

func TestUpdateRejectsEmptyStringFields(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	created, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Hello World",
		Body:  "This is long enough body.",
	}, uuid.New())
	require.NoError(t, err)

	// Explicit empty strings are provided values and must fail validation,
	// not be treated as absent fields.
	empty := ""
	_, err = svc.Update(context.Background(), created.Slug, post.UpdatePostRequest{
		Title: &empty,
		Body:  &empty,
	})
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "body")

	_, err = svc.Update(context.Background(), created.Slug, post.UpdatePostRequest{
		Slug: &empty,
	})
	require.Error(t, err)
	errs, ok = err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "slug")

	// The stored post is untouched.
	got, err := svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", got.Title)
	assert.Equal(t, "This is long enough body.", got.Body)
}

func TestUpdateSlugCollisionRejected(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	_, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "First Post", Body: "This is long enough body.",
	}, uuid.New())
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), post.CreatePostRequest{
		Title: "Second Post", Body: "This is long enough body too.",
	}, uuid.New())
	require.NoError(t, err)

	taken := "first-post"
	_, err = svc.Update(context.Background(), second.Slug, post.UpdatePostRequest{Slug: &taken})
	assert.ErrorIs(t, err, post.ErrSlugAlreadyExists)
}

func TestDeleteMissingPost(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	err := svc.Delete(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
