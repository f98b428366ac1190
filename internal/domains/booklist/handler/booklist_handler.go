package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/domains/booklist"
	"booktracker-backend/internal/shared/response"
)

type Handler struct {
	svc booklist.Service
}

func NewHandler(svc booklist.Service) *Handler {
	return &Handler{svc: svc}
}

// CreateList handles POST /curated-list.
func (h *Handler) CreateList(c *gin.Context) {
	var req booklist.CuratedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	list, err := h.svc.CreateList(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booklist.ErrListExists) {
			response.JSONError(c, http.StatusConflict,
				fmt.Sprintf("Curated list '%s' already exists, Try PUT to update.", req.Name))
			return
		}
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"list": list})
}

// UpdateList handles PUT /curated-list.
func (h *Handler) UpdateList(c *gin.Context) {
	var req booklist.CuratedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.ValidateUpdate(); err != nil {
		response.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	list, err := h.svc.UpdateList(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booklist.ErrListNotFound) {
			response.JSONError(c, http.StatusNotFound,
				fmt.Sprintf("Curated list with ID '%d' does not exist.", req.ID.Int()))
			return
		}
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"list": list})
}

// DeleteList handles DELETE /curated-list/:id.
func (h *Handler) DeleteList(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.JSONError(c, http.StatusNotFound, "The specified list does not exist.")
		return
	}

	if err := h.svc.DeleteList(c.Request.Context(), id); err != nil {
		if errors.Is(err, booklist.ErrListNotFound) {
			response.JSONError(c, http.StatusNotFound, "The specified list does not exist.")
			return
		}
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.NoContent(c)
}

// Lists handles GET /curated-lists.
func (h *Handler) Lists(c *gin.Context) {
	lists, err := h.svc.Lists(c.Request.Context())
	if err != nil {
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"lists": lists})
}

// CreatePick handles POST /curated-pick.
func (h *Handler) CreatePick(c *gin.Context) {
	var req booklist.CuratedPickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.JSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	pick, err := h.svc.CreatePick(c.Request.Context(), req)
	if err != nil {
		h.pickError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"pick": pick})
}

// RepositionPick handles PATCH /curated-pick/:id, where id is either ISBN.
func (h *Handler) RepositionPick(c *gin.Context) {
	var req booklist.RepositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSONError(c, http.StatusBadRequest, "Invalid position value.")
		return
	}

	pickID := c.Param("id")
	pick, err := h.svc.RepositionPick(c.Request.Context(), pickID, req.Position.Int())
	if err != nil {
		h.pickIDError(c, pickID, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{"pick": pick})
}

// DeletePick handles DELETE /curated-pick/:id, where id is either ISBN.
func (h *Handler) DeletePick(c *gin.Context) {
	pickID := c.Param("id")
	if err := h.svc.DeletePick(c.Request.Context(), pickID); err != nil {
		h.pickIDError(c, pickID, err)
		return
	}

	response.NoContent(c)
}

// Picks handles GET /curated-picks?list_id=N, returning the list's picks
// resolved to full book records in position order.
func (h *Handler) Picks(c *gin.Context) {
	listParam := c.Query("list_id")
	if listParam == "" {
		response.JSONError(c, http.StatusBadRequest, "List ID is required.")
		return
	}
	listID, err := strconv.Atoi(listParam)
	if err != nil {
		response.JSONError(c, http.StatusBadRequest, "List ID is required.")
		return
	}

	books, err := h.svc.ResolvePicks(c.Request.Context(), listID)
	if err != nil {
		if errors.Is(err, booklist.ErrListMissing) {
			response.JSONError(c, http.StatusNotFound, "The specified list does not exist.")
			return
		}
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"books": books})
}

func (h *Handler) pickError(c *gin.Context, err error) {
	var conflict *booklist.PickConflictError

	switch {
	case errors.Is(err, booklist.ErrInvalidPosition):
		response.JSONError(c, http.StatusBadRequest, "Invalid position value.")
	case errors.Is(err, booklist.ErrListMissing):
		response.JSONError(c, http.StatusNotFound, "The specified list does not exist.")
	case errors.As(err, &conflict):
		response.JSONError(c, http.StatusConflict,
			fmt.Sprintf("Curated pick '%s' already exists, Try PUT to update.", conflict.Existing))
	default:
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *Handler) pickIDError(c *gin.Context, pickID string, err error) {
	switch {
	case errors.Is(err, booklist.ErrInvalidPosition):
		response.JSONError(c, http.StatusBadRequest, "Invalid position value.")
	case errors.Is(err, booklist.ErrInvalidPickID):
		response.JSONError(c, http.StatusNotFound,
			fmt.Sprintf("Incorrect pick ID format:'%s'. ISBN10 or ISBN13 expected.", pickID))
	case errors.Is(err, booklist.ErrPickNotFound):
		response.JSONError(c, http.StatusNotFound,
			fmt.Sprintf("The specified pick ID:'%s' does not exist.", pickID))
	default:
		response.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
