package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
)
