package catalog

import "errors"

var (
	ErrValidation = errors.New("invalid catalog payload")
	ErrNotFound   = errors.New("record not found")
)
