package review

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid review request")
	ErrReviewNotAllowed = errors.New("review not allowed for this booking")
	ErrConflict         = errors.New("review already exists for this booking")
	ErrNotFound         = errors.New("review not found")
)
