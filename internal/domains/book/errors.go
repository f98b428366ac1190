package book

import "errors"

var (
	ErrInvalidISBN10 = errors.New("Invalid ISBN-10 format.")
	ErrInvalidISBN13 = errors.New("Invalid ISBN-13 format.")

	// ErrUpstream covers failed or malformed responses from the
	// bibliographic API; handlers surface it as a 500.
	ErrUpstream = errors.New("upstream book service error")

	// ErrNotFound is returned when the upstream has no record for the ISBN.
	ErrNotFound = errors.New("book not found")
)
