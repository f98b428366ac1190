package booklist

import (
	"encoding/json"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booktracker-backend/internal/shared/utils"
)

// FlexInt decodes JSON integers that clients send either as numbers or as
// quoted strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// CuratedListRequest is the body for creating or updating a curated list.
// ID is only consulted on update.
type CuratedListRequest struct {
	ID          FlexInt `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

func (r CuratedListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required."),
			validation.Length(1, 255),
		),
	)
}

// ValidateUpdate additionally requires the list id.
func (r CuratedListRequest) ValidateUpdate() error {
	if r.ID.Int() <= 0 {
		return validation.NewError("validation_list_id_required", "A valid list ID is required.")
	}
	return r.Validate()
}

// CuratedPickRequest is the body for adding a book to a curated list.
type CuratedPickRequest struct {
	ListID   FlexInt `json:"list_id"`
	ISBN13   string  `json:"isbn13"`
	ISBN10   string  `json:"isbn10"`
	Position FlexInt `json:"position"`
}

func (r CuratedPickRequest) Validate() error {
	if r.ISBN10 == "" && r.ISBN13 == "" {
		return validation.NewError("validation_isbn_required",
			"At least one of 'isbn10' or 'isbn13' must be provided.")
	}
	if err := validation.Validate(r.ISBN10, validation.By(isbn10Rule)); err != nil {
		return err
	}
	return validation.Validate(r.ISBN13, validation.By(isbn13Rule))
}

// RepositionRequest is the body for moving a pick to a new rank.
type RepositionRequest struct {
	Position FlexInt `json:"position"`
}

func isbn10Rule(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !utils.IsValidISBN10(s) {
		return validation.NewError("validation_isbn10", "Invalid ISBN-10 format.")
	}
	return nil
}

func isbn13Rule(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !utils.IsValidISBN13(s) {
		return validation.NewError("validation_isbn13", "Invalid ISBN-13 format.")
	}
	return nil
}
