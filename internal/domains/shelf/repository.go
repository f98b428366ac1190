package shelf

import "context"

// Repository persists the locally stored book rows and the per-user shelf
// links over them.
type Repository interface {
	// AddBook stores the book metadata (insert or refresh) and links it
	// to the user's shelf, atomically. Returns ErrAlreadyShelved when the
	// user already shelves this ISBN-13.
	AddBook(ctx context.Context, b StoredBook, userID string) error

	// ShelfFor returns the user's shelf for the ISBN-13, or
	// ErrNotShelved.
	ShelfFor(ctx context.Context, isbn13, userID string) (Shelf, error)

	// UpdateShelf moves the user's existing entry to another shelf.
	// Returns ErrNotShelved when there is no entry.
	UpdateShelf(ctx context.Context, isbn13, userID string, shelf Shelf) error

	// RemoveBook drops the user's shelf entry and garbage-collects the
	// book row once no user shelves it anymore. Returns ErrNotShelved
	// when there is no entry.
	RemoveBook(ctx context.Context, isbn13, userID string) error

	// BooksByShelf returns the user's books on one shelf ordered by
	// title.
	BooksByShelf(ctx context.Context, userID string, shelf Shelf) ([]StoredBook, error)

	// SearchByTitle returns the user's shelved books whose title contains
	// the query, case-insensitively, ordered by title.
	SearchByTitle(ctx context.Context, userID, query string) ([]StoredBook, error)
}
