package post

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreatePostRequest is the POST /api/posts payload.
// The author is never part of the payload: it is always taken from the
// authenticated identity.
type CreatePostRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug,omitempty"`
	Body  string `json:"body"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(5, 255).Error("title must be at least 5 characters long"),
		),
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
			validation.Length(10, 0).Error("body must be at least 10 characters long"),
		),
		validation.Field(&r.Slug,
			validation.When(r.Slug != "",
				validation.Match(slugPattern).Error("slug may only contain lowercase letters, numbers and hyphens"),
				validation.Length(1, 255),
			),
		),
	)
}

// UpdatePostRequest is the PUT/PATCH /api/posts/:slug payload.
// Nil fields are left unchanged (partial update).
type UpdatePostRequest struct {
	Title *string `json:"title,omitempty"`
	Slug  *string `json:"slug,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	// Length and Match skip empty values, so each provided field also needs
	// Required to reject explicit empty strings.
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title must not be blank"),
				validation.Length(5, 255).Error("title must be at least 5 characters long"),
			),
		),
		validation.Field(&r.Body,
			validation.When(r.Body != nil,
				validation.Required.Error("body must not be blank"),
				validation.Length(10, 0).Error("body must be at least 10 characters long"),
			),
		),
		validation.Field(&r.Slug,
			validation.When(r.Slug != nil,
				validation.Required.Error("slug must not be blank"),
				validation.Match(slugPattern).Error("slug may only contain lowercase letters, numbers and hyphens"),
				validation.Length(1, 255),
			),
		),
	)
}
