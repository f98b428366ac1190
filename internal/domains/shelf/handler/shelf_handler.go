package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/shelf"
	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/internal/shared/pagination"
	"booktracker-backend/internal/shared/response"
)

type Handler struct {
	svc shelf.Service
}

func NewHandler(svc shelf.Service) *Handler {
	return &Handler{svc: svc}
}

// AddBook handles POST /book.
func (h *Handler) AddBook(c *gin.Context) {
	var req shelf.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stored, err := h.svc.AddBook(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, shelf.ErrInvalidShelf):
			response.JSONError(c, http.StatusNotFound,
				fmt.Sprintf("Shelf: '%s' not found.", req.Shelf))
		case errors.Is(err, shelf.ErrAlreadyShelved):
			response.JSONError(c, http.StatusConflict,
				fmt.Sprintf("Book already in shelf %s. Please use PATCH instead.", req.Shelf))
		default:
			response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"book": stored})
}

// GetBook handles GET /book/:id, where id is either ISBN.
func (h *Handler) GetBook(c *gin.Context) {
	id := c.Param("id")
	b, err := h.svc.GetBook(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrInvalidISBN10), errors.Is(err, book.ErrInvalidISBN13):
			response.JSONError(c, http.StatusNotFound,
				fmt.Sprintf("Incorrect book ID format:'%s'. ISBN10 or ISBN13 expected.", id))
		case errors.Is(err, book.ErrNotFound):
			response.JSONError(c, http.StatusNotFound,
				fmt.Sprintf("Book with ISBN '%s' not found.", id))
		default:
			response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"book": b})
}

// UpdateShelf handles PATCH /book/:id.
func (h *Handler) UpdateShelf(c *gin.Context) {
	var req shelf.UpdateShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id := c.Param("id")
	err := h.svc.UpdateShelf(c.Request.Context(), middleware.UserID(c), id, req.Shelf)
	if err != nil {
		switch {
		case errors.Is(err, shelf.ErrInvalidShelf):
			response.JSONError(c, http.StatusNotFound,
				fmt.Sprintf("Shelf: '%s' not found.", req.Shelf))
		case errors.Is(err, book.ErrInvalidISBN13):
			response.JSONError(c, http.StatusUnprocessableEntity, "Invalid ISBN-13 format.")
		case errors.Is(err, shelf.ErrNotShelved):
			response.JSONError(c, http.StatusConflict,
				"Shelf not found for the given user and ISBN-13. Try adding to shelf first.")
		default:
			response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{})
}

// RemoveBook handles DELETE /book/:id.
func (h *Handler) RemoveBook(c *gin.Context) {
	id := c.Param("id")
	err := h.svc.RemoveBook(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrInvalidISBN13):
			response.JSONError(c, http.StatusUnprocessableEntity, "Invalid ISBN-13 format.")
		case errors.Is(err, shelf.ErrNotShelved):
			response.JSONError(c, http.StatusNotFound,
				"Shelf not found for the given user and ISBN-13.")
		default:
			response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{"deleted": id})
}

// BooksByShelf handles GET /booklist/:shelf.
func (h *Handler) BooksByShelf(c *gin.Context) {
	shelfName := c.Param("shelf")
	books, err := h.svc.BooksByShelf(c.Request.Context(), middleware.UserID(c), shelfName)
	if err != nil {
		if errors.Is(err, shelf.ErrInvalidShelf) {
			response.JSONError(c, http.StatusNotFound,
				fmt.Sprintf("Shelf: '%s' not found.", shelfName))
			return
		}
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	page, limit := pagination.Params(c)
	window := pagination.Window(books, page, limit)
	response.OK(c, http.StatusOK, pagination.Envelope(window, page, limit, len(books)))
}

// SearchShelves handles GET /search/shelves?q=.
func (h *Handler) SearchShelves(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.JSONError(c, http.StatusBadRequest, "Missing 'q' parameter")
		return
	}

	books, err := h.svc.SearchShelves(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	page, limit := pagination.Params(c)
	window := pagination.Window(books, page, limit)
	response.OK(c, http.StatusOK, pagination.Envelope(window, page, limit, len(books)))
}
