package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// PostHandler handles the /api/posts endpoints.
type PostHandler struct {
	service post.Service
}

// NewPostHandler creates the handler.
func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts. The top_posts query parameter switches to
// the top-5-by-comment-count view.
func (h *PostHandler) List(c *gin.Context) {
	topPosts := c.Query("top_posts") != ""

	posts, err := h.service.List(c.Request.Context(), topPosts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", posts)
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	logger.Info("post created", map[string]interface{}{
		"post_id": p.ID,
		"slug":    p.Slug,
		"author":  p.AuthorID,
	})

	response.Success(c, http.StatusCreated, "Post created successfully", p)
}

// GetBySlug handles GET /api/posts/:slug.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", p)
}

// Update handles PUT and PATCH /api/posts/:slug. Both are partial updates:
// absent fields stay unchanged.
func (h *PostHandler) Update(c *gin.Context) {
	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated successfully", p)
}

// Delete handles DELETE /api/posts/:slug.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, validationErrs)
	case errors.Is(err, post.ErrSlugAlreadyExists):
		response.FieldError(c, "slug", "slug must be unique")
	case errors.Is(err, post.ErrTitleAlreadyExists):
		response.FieldError(c, "title", "title must be unique")
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	default:
		logger.Error("post handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
