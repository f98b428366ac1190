package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/config"
	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/nytimes"
	"booktracker-backend/pkg/cache"
)

// NYTService fetches best-sellers lists from the NYT Books API with a
// Redis cache keyed per list.
type NYTService struct {
	baseURL  string
	apiKey   string
	cacheTTL time.Duration
	cache    cache.Cache
	client   *http.Client
}

func NewNYTService(cfg config.NYTimesConfig, c cache.Cache) *NYTService {
	return &NYTService{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		cacheTTL: cfg.CacheTTL,
		cache:    c,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type nytBook struct {
	PrimaryISBN13 string `json:"primary_isbn13"`
	PrimaryISBN10 string `json:"primary_isbn10"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	BookImage     string `json:"book_image"`
	Description   string `json:"description"`
	Publisher     string `json:"publisher"`
	Rank          int    `json:"rank"`
}

func (s *NYTService) BestSellers(ctx context.Context, category nytimes.Category) ([]book.Book, error) {
	path := category.ListPath()
	key := "nyt_bestsellers_" + path

	var books []book.Book
	found, err := s.cache.Get(ctx, key, &books)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("bestsellers cache read failed")
	}
	if found {
		return books, nil
	}

	endpoint := fmt.Sprintf("%scurrent/%s?api-key=%s", s.baseURL, path, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrUpstream, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", book.ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Results struct {
			Books []nytBook `json:"books"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", book.ErrUpstream, err)
	}

	books = make([]book.Book, 0, len(payload.Results.Books))
	for _, nb := range payload.Results.Books {
		books = append(books, book.Book{
			ISBN13:    nb.PrimaryISBN13,
			ISBN10:    nb.PrimaryISBN10,
			Title:     nb.Title,
			Authors:   []string{nb.Author},
			Image:     nb.BookImage,
			Synopsis:  nb.Description,
			Publisher: nb.Publisher,
			Position:  nb.Rank,
		})
	}

	if err := s.cache.Set(ctx, key, books, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("bestsellers cache write failed")
	}

	return books, nil
}
