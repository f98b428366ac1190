package shelf

import (
	"context"

	"booktracker-backend/internal/domains/book"
)

// Service carries the per-user shelving rules: one shelf per book per
// user, valid shelf names only, and orphaned book rows pruned on removal.
type Service interface {
	// AddBook stores the submitted book and files it on the user's shelf.
	AddBook(ctx context.Context, userID string, req AddBookRequest) (*StoredBook, error)

	// GetBook resolves the ISBN through the book service and attaches the
	// user's shelf when the book is shelved.
	GetBook(ctx context.Context, userID, id string) (*book.Book, error)

	// UpdateShelf moves an already-shelved book to another shelf.
	UpdateShelf(ctx context.Context, userID, isbn13, shelfName string) error

	// RemoveBook takes the book off the user's shelf.
	RemoveBook(ctx context.Context, userID, isbn13 string) error

	// BooksByShelf lists the user's books on one shelf ordered by title.
	BooksByShelf(ctx context.Context, userID, shelfName string) ([]StoredBook, error)

	// SearchShelves searches the user's shelved books by title substring.
	SearchShelves(ctx context.Context, userID, query string) ([]StoredBook, error)
}
