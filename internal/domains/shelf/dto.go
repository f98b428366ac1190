package shelf

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booktracker-backend/internal/shared/utils"
)

// AddBookRequest is the body for POST /book: the book metadata to store
// plus the shelf to file it under.
type AddBookRequest struct {
	ISBN13  string   `json:"isbn13"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Image   string   `json:"image"`
	Shelf   string   `json:"shelf"`
}

func (r AddBookRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.ISBN13, validation.Required.Error("ISBN-13 is required.")),
		validation.Field(&r.Title, validation.Required.Error("Title is required.")),
		validation.Field(&r.Shelf, validation.Required.Error("Shelf is required.")),
	); err != nil {
		return err
	}
	if !utils.IsValidISBN13(r.ISBN13) {
		return validation.NewError("validation_isbn13", "Invalid ISBN-13 format.")
	}
	return nil
}

// UpdateShelfRequest is the body for PATCH /book/:id.
type UpdateShelfRequest struct {
	Shelf string `json:"shelf"`
}
