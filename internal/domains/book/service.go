package book

import "context"

// Service resolves ISBNs to full book records via the upstream
// bibliographic API, caching responses.
type Service interface {
	// FetchBook resolves either ISBN to a book record and attaches the
	// caller's shelf value (empty means no shelf). The ISBN-13 is
	// preferred as the lookup key when both are supplied.
	FetchBook(ctx context.Context, shelf, isbn10, isbn13 string) (*Book, error)

	// SearchBooks runs a paged full-text search against the upstream API.
	SearchBooks(ctx context.Context, query string, page, limit int) (*SearchResult, error)
}
