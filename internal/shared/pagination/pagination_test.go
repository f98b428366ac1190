package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(rawQuery string) (int, int) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return Params(c)
}

func TestParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&limit=10", 3, 10},
		{"limit capped", "limit=100", 1, 20},
		{"zero page falls back", "page=0", 1, 20},
		{"negative limit falls back", "limit=-5", 1, 20},
		{"garbage falls back", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := paramsFor(tt.query)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, Window(items, 1, 3))
	assert.Equal(t, []int{4, 5}, Window(items, 2, 3))
	assert.Equal(t, []int{}, Window(items, 3, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Window(items, 1, 20))
	assert.Equal(t, []int{}, Window([]int{}, 1, 20))
}

func TestEnvelope(t *testing.T) {
	env := Envelope([]string{"a"}, 2, 20, 41)

	assert.Equal(t, 2, env["page"])
	assert.Equal(t, 20, env["limit"])
	assert.Equal(t, 41, env["total_results"])
	assert.Equal(t, []string{"a"}, env["books"])
}
