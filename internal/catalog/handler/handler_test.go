package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/shared/pagination"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the wire format with data left raw for per-test decoding.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Timestamp)
	return env
}

// stubAuthorService implements service.AuthorService with settable
// function fields so each test wires only the call it exercises.
type stubAuthorService struct {
	create     func(ctx context.Context, req dto.CreateAuthorRequest) (*dto.AuthorResponse, error)
	getByID    func(ctx context.Context, id int64) (*dto.AuthorResponse, error)
	list       func(ctx context.Context, req pagination.Request) (pagination.Page[dto.AuthorResponse], error)
	delete     func(ctx context.Context, id int64) error
	existsByID func(ctx context.Context, id int64) (bool, error)
}

func (s *stubAuthorService) Create(ctx context.Context, req dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	return s.create(ctx, req)
}

func (s *stubAuthorService) GetByID(ctx context.Context, id int64) (*dto.AuthorResponse, error) {
	return s.getByID(ctx, id)
}

func (s *stubAuthorService) List(ctx context.Context, req pagination.Request) (pagination.Page[dto.AuthorResponse], error) {
	return s.list(ctx, req)
}

func (s *stubAuthorService) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func (s *stubAuthorService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.existsByID(ctx, id)
}

type stubPublicationService struct {
	getByID       func(ctx context.Context, id int64) (*dto.PublicationResponse, error)
	list          func(ctx context.Context, req pagination.Request) (pagination.Page[dto.PublicationSummary], error)
	searchByTitle func(ctx context.Context, title string, req pagination.Request) (pagination.Page[dto.PublicationSummary], error)
	groupedByType func(ctx context.Context) (*dto.GroupedPublications, error)
	delete        func(ctx context.Context, id int64) error
	existsByID    func(ctx context.Context, id int64) (bool, error)
	existsByTitle func(ctx context.Context, title string) (bool, error)
}

func (s *stubPublicationService) GetByID(ctx context.Context, id int64) (*dto.PublicationResponse, error) {
	return s.getByID(ctx, id)
}

func (s *stubPublicationService) List(ctx context.Context, req pagination.Request) (pagination.Page[dto.PublicationSummary], error) {
	return s.list(ctx, req)
}

func (s *stubPublicationService) SearchByTitle(ctx context.Context, title string, req pagination.Request) (pagination.Page[dto.PublicationSummary], error) {
	return s.searchByTitle(ctx, title, req)
}

func (s *stubPublicationService) GroupedByType(ctx context.Context) (*dto.GroupedPublications, error) {
	return s.groupedByType(ctx)
}

func (s *stubPublicationService) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func (s *stubPublicationService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.existsByID(ctx, id)
}

func (s *stubPublicationService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return s.existsByTitle(ctx, title)
}

func authorRouter(svc *stubAuthorService) *gin.Engine {
	h := NewAuthorHandler(svc)
	router := gin.New()
	group := router.Group("/api/v1/authors")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.GET("/:id/exists", h.Exists)
	group.DELETE("/:id", h.Delete)
	return router
}

func publicationRouter(svc *stubPublicationService) *gin.Engine {
	h := NewPublicationHandler(svc)
	router := gin.New()
	group := router.Group("/api/v1/publications")
	group.GET("", h.List)
	group.GET("/grouped", h.Grouped)
	group.GET("/search/title", h.SearchByTitle)
	group.GET("/title/:title/exists", h.ExistsByTitle)
	group.GET("/:id", h.GetByID)
	group.GET("/:id/exists", h.Exists)
	group.DELETE("/:id", h.Delete)
	return router
}
