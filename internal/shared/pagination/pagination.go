package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Params reads page/limit query parameters, applying defaults and capping
// limit at DefaultLimit.
func Params(c *gin.Context) (page, limit int) {
	page = intQuery(c, "page", DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit = intQuery(c, "limit", DefaultLimit)
	if limit < 1 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	return page, limit
}

// Window slices items down to the requested page. Out-of-range pages yield
// an empty (non-nil) slice so responses marshal as [] rather than null.
func Window[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// Envelope builds the paginated books payload shared by the booklist,
// search, and bestsellers endpoints.
func Envelope(books interface{}, page, limit, total int) gin.H {
	return gin.H{
		"books":         books,
		"page":          page,
		"limit":         limit,
		"total_results": total,
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
