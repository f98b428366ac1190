package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/config"
	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/shared/utils"
	"booktracker-backend/pkg/cache"
)

// ISBNdbService is the concrete book.Service backed by the ISBNdb API with
// a Redis cache in front of single-book lookups.
type ISBNdbService struct {
	baseURL   string
	apiKey    string
	userAgent string
	cacheTTL  time.Duration
	cache     cache.Cache
	client    *http.Client
}

func NewISBNdbService(cfg config.ISBNdbConfig, c cache.Cache) *ISBNdbService {
	return &ISBNdbService{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		cacheTTL:  cfg.CacheTTL,
		cache:     c,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ISBNdbService) FetchBook(ctx context.Context, shelf, isbn10, isbn13 string) (*book.Book, error) {
	key, err := bookID(isbn10, isbn13)
	if err != nil {
		return nil, err
	}

	var b book.Book
	found, err := s.cache.Get(ctx, key, &b)
	if err != nil {
		// Cache trouble is not fatal; fall through to the upstream call.
		log.Warn().Err(err).Str("isbn", key).Msg("book cache read failed")
	}

	if !found {
		fetched, err := s.fetchBook(ctx, key)
		if err != nil {
			return nil, err
		}
		b = *fetched

		if err := s.cache.Set(ctx, key, b, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("isbn", key).Msg("book cache write failed")
		}
	}

	b.Shelf = shelf
	return &b, nil
}

func (s *ISBNdbService) SearchBooks(ctx context.Context, query string, page, limit int) (*book.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/books/%s?page=%d&pageSize=%d", s.baseURL, url.PathEscape(query), page, limit)

	var payload struct {
		Total int         `json:"total"`
		Books []book.Book `json:"books"`
	}
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	if payload.Books == nil {
		payload.Books = []book.Book{}
	}

	return &book.SearchResult{Books: payload.Books, Total: payload.Total}, nil
}

func (s *ISBNdbService) fetchBook(ctx context.Context, isbn string) (*book.Book, error) {
	endpoint := fmt.Sprintf("%s/book/%s", s.baseURL, isbn)

	var payload struct {
		Book book.Book `json:"book"`
	}
	if err := s.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return &payload.Book, nil
}

func (s *ISBNdbService) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", book.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", book.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return book.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", book.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: invalid JSON response: %v", book.ErrUpstream, err)
	}

	return nil
}

// bookID validates the supplied ISBNs and picks the lookup key, preferring
// the ISBN-13.
func bookID(isbn10, isbn13 string) (string, error) {
	if isbn10 != "" && !utils.IsValidISBN10(isbn10) {
		// A valid ISBN-13 in the isbn10 slot still identifies the book;
		// shelf routes pass the path id in both slots.
		if !utils.IsValidISBN13(isbn10) {
			return "", book.ErrInvalidISBN10
		}
	}
	if isbn13 != "" && !utils.IsValidISBN13(isbn13) {
		if !utils.IsValidISBN10(isbn13) {
			return "", book.ErrInvalidISBN13
		}
	}

	if isbn13 != "" {
		return isbn13, nil
	}
	return isbn10, nil
}
