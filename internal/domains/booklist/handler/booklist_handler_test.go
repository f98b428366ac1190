package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/booklist"
)

// stubService lets each test script the service layer's answer.
type stubService struct {
	createList   func(booklist.CuratedListRequest) (*booklist.CuratedList, error)
	updateList   func(booklist.CuratedListRequest) (*booklist.CuratedList, error)
	deleteList   func(int) error
	lists        func() ([]booklist.CuratedList, error)
	createPick   func(booklist.CuratedPickRequest) (*booklist.CuratedPick, error)
	reposition   func(string, int) (*booklist.CuratedPick, error)
	deletePick   func(string) error
	resolvePicks func(int) ([]book.Book, error)
}

func (s *stubService) CreateList(_ context.Context, req booklist.CuratedListRequest) (*booklist.CuratedList, error) {
	return s.createList(req)
}

func (s *stubService) UpdateList(_ context.Context, req booklist.CuratedListRequest) (*booklist.CuratedList, error) {
	return s.updateList(req)
}

func (s *stubService) DeleteList(_ context.Context, id int) error {
	return s.deleteList(id)
}

func (s *stubService) Lists(_ context.Context) ([]booklist.CuratedList, error) {
	return s.lists()
}

func (s *stubService) CreatePick(_ context.Context, req booklist.CuratedPickRequest) (*booklist.CuratedPick, error) {
	return s.createPick(req)
}

func (s *stubService) RepositionPick(_ context.Context, pickID string, newPosition int) (*booklist.CuratedPick, error) {
	return s.reposition(pickID, newPosition)
}

func (s *stubService) DeletePick(_ context.Context, pickID string) error {
	return s.deletePick(pickID)
}

func (s *stubService) ResolvePicks(_ context.Context, listID int) ([]book.Book, error) {
	return s.resolvePicks(listID)
}

func newRouter(svc booklist.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.POST("/curated-list", h.CreateList)
	r.PUT("/curated-list", h.UpdateList)
	r.DELETE("/curated-list/:id", h.DeleteList)
	r.GET("/curated-lists", h.Lists)
	r.POST("/curated-pick", h.CreatePick)
	r.PATCH("/curated-pick/:id", h.RepositionPick)
	r.DELETE("/curated-pick/:id", h.DeletePick)
	r.GET("/curated-picks", h.Picks)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (int, string) {
	t.Helper()

	var body struct {
		Success bool   `json:"success"`
		Error   int    `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error, body.Message
}

func TestCreateListSuccess(t *testing.T) {
	svc := &stubService{
		createList: func(req booklist.CuratedListRequest) (*booklist.CuratedList, error) {
			return &booklist.CuratedList{ID: 1, Name: req.Name, Description: req.Description}, nil
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-list",
		`{"name":"Test List","description":"Test Description"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t,
		`{"success":true,"list":{"id":1,"name":"Test List","description":"Test Description"}}`,
		w.Body.String())
}

func TestCreateListDuplicate(t *testing.T) {
	svc := &stubService{
		createList: func(booklist.CuratedListRequest) (*booklist.CuratedList, error) {
			return nil, booklist.ErrListExists
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-list", `{"name":"Test List"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	code, msg := decodeError(t, w)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Curated list 'Test List' already exists, Try PUT to update.", msg)
}

func TestCreateListMissingName(t *testing.T) {
	svc := &stubService{}

	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-list", `{"description":"x"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateListUnknown(t *testing.T) {
	svc := &stubService{
		updateList: func(booklist.CuratedListRequest) (*booklist.CuratedList, error) {
			return nil, booklist.ErrListNotFound
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPut, "/curated-list", `{"id":42,"name":"Renamed"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "Curated list with ID '42' does not exist.", msg)
}

func TestUpdateListAcceptsStringID(t *testing.T) {
	var got int
	svc := &stubService{
		updateList: func(req booklist.CuratedListRequest) (*booklist.CuratedList, error) {
			got = req.ID.Int()
			return &booklist.CuratedList{ID: got, Name: req.Name}, nil
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPut, "/curated-list", `{"id":"7","name":"Renamed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, got)
}

func TestDeleteListNoContent(t *testing.T) {
	svc := &stubService{
		deleteList: func(id int) error { return nil },
	}

	w := doJSON(t, newRouter(svc), http.MethodDelete, "/curated-list/3", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteListUnknown(t *testing.T) {
	svc := &stubService{
		deleteList: func(int) error { return booklist.ErrListNotFound },
	}

	w := doJSON(t, newRouter(svc), http.MethodDelete, "/curated-list/1000000", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "The specified list does not exist.", msg)
}

func TestDeleteListMalformedID(t *testing.T) {
	svc := &stubService{}

	w := doJSON(t, newRouter(svc), http.MethodDelete, "/curated-list/abc", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "The specified list does not exist.", msg)
}

func TestListsEnvelope(t *testing.T) {
	svc := &stubService{
		lists: func() ([]booklist.CuratedList, error) {
			return []booklist.CuratedList{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodGet, "/curated-lists", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool                   `json:"success"`
		Lists   []booklist.CuratedList `json:"lists"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Lists, 2)
}

func TestCreatePickSuccess(t *testing.T) {
	svc := &stubService{
		createPick: func(req booklist.CuratedPickRequest) (*booklist.CuratedPick, error) {
			return &booklist.CuratedPick{
				ID:       1,
				ListID:   req.ListID.Int(),
				ISBN13:   req.ISBN13,
				Position: req.Position.Int(),
			}, nil
		},
	}

	// Position sent as a string, as some clients do.
	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-pick",
		`{"list_id":2,"isbn13":"9780061120084","position":"1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t,
		`{"success":true,"pick":{"id":1,"list_id":2,"isbn13":"9780061120084","position":1}}`,
		w.Body.String())
}

func TestCreatePickMissingISBNs(t *testing.T) {
	svc := &stubService{}

	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-pick", `{"list_id":2,"position":1}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "At least one of 'isbn10' or 'isbn13' must be provided.", msg)
}

func TestCreatePickConflictMessage(t *testing.T) {
	svc := &stubService{
		createPick: func(booklist.CuratedPickRequest) (*booklist.CuratedPick, error) {
			return nil, &booklist.PickConflictError{Existing: &booklist.CuratedPick{
				ListID:   2,
				ISBN13:   "9780061120084",
				Position: 1,
			}}
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-pick",
		`{"list_id":2,"isbn13":"9780061120084","position":3}`)

	require.Equal(t, http.StatusConflict, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t,
		"Curated pick 'CuratedPick(list_id=2, isbn13=9780061120084, isbn10=None, position=1)' already exists, Try PUT to update.",
		msg)
}

func TestCreatePickUnknownList(t *testing.T) {
	svc := &stubService{
		createPick: func(booklist.CuratedPickRequest) (*booklist.CuratedPick, error) {
			return nil, booklist.ErrListMissing
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPost, "/curated-pick",
		`{"list_id":99,"isbn13":"9780061120084","position":1}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "The specified list does not exist.", msg)
}

func TestRepositionInvalidPosition(t *testing.T) {
	svc := &stubService{
		reposition: func(string, int) (*booklist.CuratedPick, error) {
			return nil, booklist.ErrInvalidPosition
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPatch, "/curated-pick/9780061120084",
		`{"position":0}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "Invalid position value.", msg)
}

func TestRepositionBadPickIDFormat(t *testing.T) {
	svc := &stubService{
		reposition: func(string, int) (*booklist.CuratedPick, error) {
			return nil, booklist.ErrInvalidPickID
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPatch, "/curated-pick/abc", `{"position":2}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "Incorrect pick ID format:'abc'. ISBN10 or ISBN13 expected.", msg)
}

func TestRepositionUnknownPick(t *testing.T) {
	svc := &stubService{
		reposition: func(string, int) (*booklist.CuratedPick, error) {
			return nil, booklist.ErrPickNotFound
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPatch, "/curated-pick/9780061120084",
		`{"position":2}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "The specified pick ID:'9780061120084' does not exist.", msg)
}

func TestRepositionSuccess(t *testing.T) {
	svc := &stubService{
		reposition: func(pickID string, pos int) (*booklist.CuratedPick, error) {
			return &booklist.CuratedPick{ID: 5, ListID: 2, ISBN13: pickID, Position: pos}, nil
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodPatch, "/curated-pick/9780061120084",
		`{"position":"3"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"pick":{"id":5,"list_id":2,"isbn13":"9780061120084","position":3}}`,
		w.Body.String())
}

func TestDeletePickNoContent(t *testing.T) {
	svc := &stubService{
		deletePick: func(string) error { return nil },
	}

	w := doJSON(t, newRouter(svc), http.MethodDelete, "/curated-pick/9780061120084", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPicksRequireListID(t *testing.T) {
	svc := &stubService{}

	w := doJSON(t, newRouter(svc), http.MethodGet, "/curated-picks", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "List ID is required.", msg)
}

func TestPicksUnknownList(t *testing.T) {
	svc := &stubService{
		resolvePicks: func(int) ([]book.Book, error) {
			return nil, booklist.ErrListMissing
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodGet, "/curated-picks?list_id=42", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	_, msg := decodeError(t, w)
	assert.Equal(t, "The specified list does not exist.", msg)
}

func TestPicksEnvelope(t *testing.T) {
	svc := &stubService{
		resolvePicks: func(listID int) ([]book.Book, error) {
			return []book.Book{
				{ISBN13: "9780061120084", Title: "First", Position: 1},
				{ISBN13: "9780141439518", Title: "Second", Position: 2},
			}, nil
		},
	}

	w := doJSON(t, newRouter(svc), http.MethodGet, "/curated-picks?list_id=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool        `json:"success"`
		Books   []book.Book `json:"books"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Books, 2)
	assert.Equal(t, 1, body.Books[0].Position)
	assert.Equal(t, "Second", body.Books[1].Title)
}
