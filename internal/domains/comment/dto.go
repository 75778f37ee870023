package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest is the POST /api/posts/:slug/comments payload.
// Author and post are resolved server-side; any author/post values in the
// raw payload are simply not part of this type.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
			validation.Length(5, 0).Error("comment must be at least 5 characters long"),
		),
	)
}

// UpdateCommentRequest is the PUT/PATCH /api/comments/:id payload.
// Only the body is mutable.
type UpdateCommentRequest struct {
	Body string `json:"body"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
			validation.Length(5, 0).Error("comment must be at least 5 characters long"),
		),
	)
}
