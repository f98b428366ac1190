package shelf

import "errors"

var (
	// ErrInvalidShelf signals a shelf name outside the three known values.
	ErrInvalidShelf = errors.New("shelf not found")

	// ErrAlreadyShelved signals that the user already has the book on a
	// shelf; updates go through PATCH instead.
	ErrAlreadyShelved = errors.New("book already in shelf")

	// ErrNotShelved signals that the user has no shelf entry for the book.
	ErrNotShelved = errors.New("shelf not found for the given user and isbn13")
)
