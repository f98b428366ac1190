package booklist

import "context"

// Repository is the persistence contract for curated lists and picks.
type Repository interface {
	// CreateList inserts a new list. Returns ErrListExists when the name
	// is already taken.
	CreateList(ctx context.Context, name, description string) (*CuratedList, error)

	// UpdateList rewrites the name and description of an existing list.
	// Returns ErrListNotFound for an unknown id.
	UpdateList(ctx context.Context, list *CuratedList) error

	// DeleteList removes a list and, via cascade, all of its picks.
	// Returns ErrListNotFound for an unknown id.
	DeleteList(ctx context.Context, id int) error

	// Lists returns every curated list ordered by id.
	Lists(ctx context.Context) ([]CuratedList, error)

	// ListByID fetches one list. Returns ErrListNotFound when absent.
	ListByID(ctx context.Context, id int) (*CuratedList, error)

	// CreatePick inserts a pick at its requested position.
	CreatePick(ctx context.Context, pick *CuratedPick) (*CuratedPick, error)

	// PickByISBN finds the pick holding the given ISBN on any list,
	// matching against both the isbn13 and isbn10 columns. Returns
	// ErrPickNotFound when no list holds the book.
	PickByISBN(ctx context.Context, isbn string) (*CuratedPick, error)

	// DeletePick removes a pick by row id. Remaining positions on the
	// list are left as they are.
	DeletePick(ctx context.Context, id int) error

	// PicksByList returns a list's picks ordered by ascending position.
	PicksByList(ctx context.Context, listID int) ([]CuratedPick, error)

	// Reposition moves a pick to newPosition, shifting the picks between
	// its old and new ranks by one so the ordering stays dense. The whole
	// move commits atomically or not at all.
	Reposition(ctx context.Context, pick *CuratedPick, newPosition int) error
}
