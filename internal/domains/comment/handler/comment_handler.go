package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// CommentHandler handles post-scoped comment collections and comment item
// endpoints.
type CommentHandler struct {
	service comment.Service
}

// NewCommentHandler creates the handler.
func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByPost handles GET /api/posts/:slug/comments.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, err := h.service.ListByPostSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", comments)
}

// Create handles POST /api/posts/:slug/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.Param("slug"), req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	logger.Info("comment created", map[string]interface{}{
		"comment_id": created.ID,
		"post_id":    created.PostID,
		"author":     created.AuthorID,
	})

	response.Success(c, http.StatusCreated, "Comment created successfully", created)
}

// GetByID handles GET /api/comments/:id.
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Comment not found")
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", found)
}

// Update handles PUT and PATCH /api/comments/:id.
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Comment not found")
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Comment updated successfully", updated)
}

// Delete handles DELETE /api/comments/:id.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Comment not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.ValidationFailed(c, validationErrs)
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	default:
		logger.Error("comment handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
