package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/shared/pagination"
	"booktracker-backend/internal/shared/response"
)

type Handler struct {
	svc book.Service
}

func NewHandler(svc book.Service) *Handler {
	return &Handler{svc: svc}
}

// SearchBooks handles GET /search/books?q=, proxying the upstream
// bibliographic search.
func (h *Handler) SearchBooks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.JSONError(c, http.StatusBadRequest, "Missing 'q' parameter")
		return
	}

	page, limit := pagination.Params(c)
	result, err := h.svc.SearchBooks(c.Request.Context(), query, page, limit)
	if err != nil {
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(c, http.StatusOK, pagination.Envelope(result.Books, page, limit, result.Total))
}
