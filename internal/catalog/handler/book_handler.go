package handler

import (
	"github.com/gin-gonic/gin"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/service"
	"publisher-catalog/internal/shared/pagination"
	"publisher-catalog/internal/shared/response"
)

type BookHandler struct {
	service service.BookService
}

func NewBookHandler(service service.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /api/v1/books.
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindAndValidate(c, &req) {
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Book created successfully", book)
}

// Update handles PUT /api/v1/books/:id.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if !bindAndValidate(c, &req) {
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Book updated successfully", book)
}

// GetByID handles GET /api/v1/books/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Book retrieved successfully", book)
}

// GetByISBN handles GET /api/v1/books/isbn/:isbn.
func (h *BookHandler) GetByISBN(c *gin.Context) {
	book, err := h.service.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Book retrieved successfully", book)
}

// List handles GET /api/v1/books.
func (h *BookHandler) List(c *gin.Context) {
	req := pagination.Parse(c, 20, "title")

	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Books retrieved successfully", page)
}

// ListByAuthor handles GET /api/v1/books/author/:authorId.
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	req := pagination.Parse(c, 20, "title")

	page, err := h.service.ListByAuthor(c.Request.Context(), authorID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Books by author retrieved successfully", page)
}

// Delete handles DELETE /api/v1/books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Book deleted successfully", nil)
}

// Exists handles GET /api/v1/books/:id/exists.
func (h *BookHandler) Exists(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exists, err := h.service.ExistsByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Existence check completed", exists)
}
