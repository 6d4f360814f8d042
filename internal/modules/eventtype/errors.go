package eventtype

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrSlugExists = errors.New("event type slug already exists")
)
