package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/shelf"
	"booktracker-backend/internal/shared/utils"
)

// ShelfService implements shelf.Service on top of the repository, using
// the book service for detail lookups.
type ShelfService struct {
	repo  shelf.Repository
	books book.Service
}

func NewShelfService(repo shelf.Repository, books book.Service) *ShelfService {
	return &ShelfService{repo: repo, books: books}
}

func (s *ShelfService) AddBook(ctx context.Context, userID string, req shelf.AddBookRequest) (*shelf.StoredBook, error) {
	sh, ok := shelf.ParseShelf(req.Shelf)
	if !ok {
		return nil, shelf.ErrInvalidShelf
	}

	stored := shelf.StoredBook{
		ISBN13:  req.ISBN13,
		Title:   req.Title,
		Authors: req.Authors,
		Image:   req.Image,
		Shelf:   sh,
	}
	if stored.Authors == nil {
		stored.Authors = []string{}
	}

	if err := s.repo.AddBook(ctx, stored, userID); err != nil {
		return nil, err
	}

	log.Info().Str("user_id", userID).Str("isbn13", stored.ISBN13).Str("shelf", string(sh)).Msg("book shelved")
	return &stored, nil
}

func (s *ShelfService) GetBook(ctx context.Context, userID, id string) (*book.Book, error) {
	var isbn10, isbn13 string
	switch {
	case utils.IsValidISBN13(id):
		isbn13 = id
	case utils.IsValidISBN10(id):
		isbn10 = id
	default:
		return nil, book.ErrInvalidISBN13
	}

	b, err := s.books.FetchBook(ctx, "", isbn10, isbn13)
	if err != nil {
		return nil, err
	}

	key := b.ISBN13
	if key == "" {
		key = id
	}
	sh, err := s.repo.ShelfFor(ctx, key, userID)
	switch {
	case err == nil:
		b.Shelf = string(sh)
	case errors.Is(err, shelf.ErrNotShelved):
		// Not shelved is fine; the detail view just omits the shelf.
	default:
		return nil, err
	}

	return b, nil
}

func (s *ShelfService) UpdateShelf(ctx context.Context, userID, isbn13, shelfName string) error {
	sh, ok := shelf.ParseShelf(shelfName)
	if !ok {
		return shelf.ErrInvalidShelf
	}
	if !utils.IsValidISBN13(isbn13) {
		return book.ErrInvalidISBN13
	}

	if err := s.repo.UpdateShelf(ctx, isbn13, userID, sh); err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Str("isbn13", isbn13).Str("shelf", string(sh)).Msg("shelf updated")
	return nil
}

func (s *ShelfService) RemoveBook(ctx context.Context, userID, isbn13 string) error {
	if !utils.IsValidISBN13(isbn13) {
		return book.ErrInvalidISBN13
	}

	if err := s.repo.RemoveBook(ctx, isbn13, userID); err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Str("isbn13", isbn13).Msg("book unshelved")
	return nil
}

func (s *ShelfService) BooksByShelf(ctx context.Context, userID, shelfName string) ([]shelf.StoredBook, error) {
	sh, ok := shelf.ParseShelf(shelfName)
	if !ok {
		return nil, shelf.ErrInvalidShelf
	}
	return s.repo.BooksByShelf(ctx, userID, sh)
}

func (s *ShelfService) SearchShelves(ctx context.Context, userID, query string) ([]shelf.StoredBook, error) {
	return s.repo.SearchByTitle(ctx, userID, query)
}
