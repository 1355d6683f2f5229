package catalog

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrAlreadyBorrowed = errors.New("book is already borrowed")
)
