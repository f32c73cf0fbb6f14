package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParseDefaults(t *testing.T) {
	req := Parse(requestWithQuery(""), 20, "title")

	assert.Equal(t, 0, req.Page)
	assert.Equal(t, 20, req.Size)
	assert.Equal(t, "title", req.SortBy)
	assert.False(t, req.Desc)
}

func TestParseExplicitValues(t *testing.T) {
	req := Parse(requestWithQuery("page=2&size=5&sortBy=name&sortDirection=DESC"), 20, "title")

	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.Size)
	assert.Equal(t, "name", req.SortBy)
	assert.True(t, req.Desc)
}

func TestParseDescIsCaseInsensitive(t *testing.T) {
	req := Parse(requestWithQuery("sortDirection=desc"), 20, "title")

	assert.True(t, req.Desc)
}

func TestParseClampsBadValues(t *testing.T) {
	req := Parse(requestWithQuery("page=-3&size=0"), 20, "title")
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, 20, req.Size)

	req = Parse(requestWithQuery("page=junk&size=junk"), 20, "title")
	assert.Equal(t, 0, req.Page)
	assert.Equal(t, 20, req.Size)

	req = Parse(requestWithQuery("size=5000"), 20, "title")
	assert.Equal(t, 100, req.Size)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Request{Page: 0, Size: 20}.Offset())
	assert.Equal(t, 40, Request{Page: 2, Size: 20}.Offset())
}

func TestNewPageNilContent(t *testing.T) {
	page := NewPage[string](nil, Request{Page: 0, Size: 20}, 0)

	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, 0, page.TotalPages)
}

func TestNewPageRoundsTotalPagesUp(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, Request{Page: 0, Size: 2}, 3)

	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestNewPageZeroSize(t *testing.T) {
	page := NewPage([]int{}, Request{Page: 0, Size: 0}, 5)

	assert.Equal(t, 0, page.TotalPages)
}
