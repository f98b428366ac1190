package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/domains/nytimes"
	"booktracker-backend/internal/shared/response"
)

type Handler struct {
	svc nytimes.Service
}

func NewHandler(svc nytimes.Service) *Handler {
	return &Handler{svc: svc}
}

// Fiction handles GET /ny-times/best-sellers/fiction.
func (h *Handler) Fiction(c *gin.Context) {
	h.bestSellers(c, nytimes.Fiction)
}

// NonFiction handles GET /ny-times/best-sellers/non-fiction.
func (h *Handler) NonFiction(c *gin.Context) {
	h.bestSellers(c, nytimes.NonFiction)
}

func (h *Handler) bestSellers(c *gin.Context, category nytimes.Category) {
	books, err := h.svc.BestSellers(c.Request.Context(), category)
	if err != nil {
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"books": books})
}
