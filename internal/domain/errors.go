package domain

import "errors"

var (
	ErrURLNotFound   = errors.New("short url not found")
	ErrCodeTaken     = errors.New("custom code already taken")
	ErrInvalidURL    = errors.New("invalid long url")
	ErrInvalidCode   = errors.New("custom code must be alphanumeric")
	ErrNonPositiveID = errors.New("id must be positive")
)
