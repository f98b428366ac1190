package nytimes

import (
	"context"

	"booktracker-backend/internal/domains/book"
)

// Category selects which best-sellers list to fetch.
type Category string

const (
	Fiction    Category = "fiction"
	NonFiction Category = "non-fiction"
)

// ListPath is the NYT API list name for the category.
func (c Category) ListPath() string {
	if c == NonFiction {
		return "combined-print-and-e-book-nonfiction.json"
	}
	return "combined-print-and-e-book-fiction.json"
}

// Service fetches the current NYT best-sellers lists, cached.
type Service interface {
	BestSellers(ctx context.Context, category Category) ([]book.Book, error)
}
