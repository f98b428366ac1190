package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/booklist"
	"booktracker-backend/internal/shared/utils"
)

// BooklistService implements booklist.Service on top of the repository,
// resolving picks to book records through the book service.
type BooklistService struct {
	repo  booklist.Repository
	books book.Service
}

func NewBooklistService(repo booklist.Repository, books book.Service) *BooklistService {
	return &BooklistService{repo: repo, books: books}
}

func (s *BooklistService) CreateList(ctx context.Context, req booklist.CuratedListRequest) (*booklist.CuratedList, error) {
	list, err := s.repo.CreateList(ctx, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	log.Info().Int("list_id", list.ID).Str("name", list.Name).Msg("curated list created")
	return list, nil
}

func (s *BooklistService) UpdateList(ctx context.Context, req booklist.CuratedListRequest) (*booklist.CuratedList, error) {
	list := &booklist.CuratedList{
		ID:          req.ID.Int(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.UpdateList(ctx, list); err != nil {
		return nil, err
	}

	log.Info().Int("list_id", list.ID).Msg("curated list updated")
	return list, nil
}

func (s *BooklistService) DeleteList(ctx context.Context, id int) error {
	if err := s.repo.DeleteList(ctx, id); err != nil {
		return err
	}

	log.Info().Int("list_id", id).Msg("curated list deleted")
	return nil
}

func (s *BooklistService) Lists(ctx context.Context) ([]booklist.CuratedList, error) {
	return s.repo.Lists(ctx)
}

func (s *BooklistService) CreatePick(ctx context.Context, req booklist.CuratedPickRequest) (*booklist.CuratedPick, error) {
	if req.Position.Int() < 1 {
		return nil, booklist.ErrInvalidPosition
	}

	if _, err := s.repo.ListByID(ctx, req.ListID.Int()); err != nil {
		if errors.Is(err, booklist.ErrListNotFound) {
			return nil, booklist.ErrListMissing
		}
		return nil, err
	}

	// A book lives on at most one curated list, so the conflict check
	// spans every list and matches either ISBN form.
	for _, isbn := range []string{req.ISBN13, req.ISBN10} {
		if isbn == "" {
			continue
		}
		existing, err := s.repo.PickByISBN(ctx, isbn)
		if err == nil {
			return nil, &booklist.PickConflictError{Existing: existing}
		}
		if !errors.Is(err, booklist.ErrPickNotFound) {
			return nil, err
		}
	}

	pick := &booklist.CuratedPick{
		ListID:   req.ListID.Int(),
		ISBN13:   req.ISBN13,
		ISBN10:   req.ISBN10,
		Position: req.Position.Int(),
	}
	created, err := s.repo.CreatePick(ctx, pick)
	if err != nil {
		return nil, err
	}

	log.Info().Int("list_id", created.ListID).Int("position", created.Position).Msg("curated pick created")
	return created, nil
}

func (s *BooklistService) RepositionPick(ctx context.Context, pickID string, newPosition int) (*booklist.CuratedPick, error) {
	// Position is rejected before the pick is even looked up.
	if newPosition < 1 {
		return nil, booklist.ErrInvalidPosition
	}

	pick, err := s.lookupPick(ctx, pickID)
	if err != nil {
		return nil, err
	}

	if newPosition == pick.Position {
		return pick, nil
	}

	if err := s.repo.Reposition(ctx, pick, newPosition); err != nil {
		return nil, err
	}

	log.Info().
		Int("list_id", pick.ListID).
		Str("pick", pickID).
		Int("position", pick.Position).
		Msg("curated pick repositioned")
	return pick, nil
}

func (s *BooklistService) DeletePick(ctx context.Context, pickID string) error {
	pick, err := s.lookupPick(ctx, pickID)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePick(ctx, pick.ID); err != nil {
		return err
	}

	log.Info().Int("list_id", pick.ListID).Str("pick", pickID).Msg("curated pick deleted")
	return nil
}

func (s *BooklistService) ResolvePicks(ctx context.Context, listID int) ([]book.Book, error) {
	if _, err := s.repo.ListByID(ctx, listID); err != nil {
		if errors.Is(err, booklist.ErrListNotFound) {
			return nil, booklist.ErrListMissing
		}
		return nil, err
	}

	picks, err := s.repo.PicksByList(ctx, listID)
	if err != nil {
		return nil, err
	}

	books := []book.Book{}
	for _, p := range picks {
		b, err := s.books.FetchBook(ctx, "", p.ISBN10, p.ISBN13)
		if err != nil {
			return nil, err
		}
		b.Position = p.Position
		books = append(books, *b)
	}
	return books, nil
}

func (s *BooklistService) lookupPick(ctx context.Context, pickID string) (*booklist.CuratedPick, error) {
	if !utils.IsValidISBN10(pickID) && !utils.IsValidISBN13(pickID) {
		return nil, booklist.ErrInvalidPickID
	}
	return s.repo.PickByISBN(ctx, pickID)
}
