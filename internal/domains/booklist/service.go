package booklist

import (
	"context"

	"booktracker-backend/internal/domains/book"
)

// Service carries the curated-list business rules: name uniqueness, the
// one-list-per-book constraint, and the dense-position reorder dance.
type Service interface {
	CreateList(ctx context.Context, req CuratedListRequest) (*CuratedList, error)
	UpdateList(ctx context.Context, req CuratedListRequest) (*CuratedList, error)
	DeleteList(ctx context.Context, id int) error
	Lists(ctx context.Context) ([]CuratedList, error)

	// CreatePick adds a book to a list at the requested position. A book
	// may sit on at most one list, checked across all lists by either
	// ISBN.
	CreatePick(ctx context.Context, req CuratedPickRequest) (*CuratedPick, error)

	// RepositionPick moves the pick identified by ISBN to newPosition,
	// shifting its neighbors so positions stay dense. Moving a pick to
	// its current position is a no-op.
	RepositionPick(ctx context.Context, pickID string, newPosition int) (*CuratedPick, error)

	// DeletePick removes the pick identified by ISBN. Positions of the
	// remaining picks are not compacted.
	DeletePick(ctx context.Context, pickID string) error

	// ResolvePicks returns a list's picks as full book records, in
	// position order, each carrying its position.
	ResolvePicks(ctx context.Context, listID int) ([]book.Book, error)
}
