package book

import "github.com/shopspring/decimal"

// Book is the record shape served to clients for every book-bearing
// endpoint. It mirrors the upstream bibliographic API record, trimmed to
// the fields the frontend consumes. Optional fields are omitted rather
// than serialized as null.
type Book struct {
	ISBN          string          `json:"isbn,omitempty"`
	ISBN13        string          `json:"isbn13,omitempty"`
	ISBN10        string          `json:"isbn10,omitempty"`
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle,omitempty"`
	Authors       []string        `json:"authors"`
	Image         string          `json:"image"`
	Rating        float64         `json:"rating,omitempty"`
	MSRP          decimal.Decimal `json:"msrp"`
	Language      string          `json:"language,omitempty"`
	Publisher     string          `json:"publisher,omitempty"`
	DatePublished string          `json:"date_published,omitempty"`
	Shelf         string          `json:"shelf,omitempty"`
	Synopsis      string          `json:"synopsis,omitempty"`
	Pages         int             `json:"pages,omitempty"`
	Subjects      []string        `json:"subjects,omitempty"`

	// Position is only set on curated-pick responses, where each book
	// carries its rank within the curated list.
	Position int `json:"position,omitempty"`
}

// SearchResult is a page of books from the upstream search endpoint.
type SearchResult struct {
	Books []Book
	Total int
}
