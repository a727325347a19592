package domain

import "errors"

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrInvalidInput  = errors.New("invalid input")
)
