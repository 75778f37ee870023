package post

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrSlugAlreadyExists  = errors.New("slug already exists")
	ErrTitleAlreadyExists = errors.New("title already exists")
	ErrEmptySlug          = errors.New("slug derived from title is empty")
)
