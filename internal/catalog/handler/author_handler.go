package handler

import (
	"github.com/gin-gonic/gin"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/service"
	"publisher-catalog/internal/shared/pagination"
	"publisher-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service service.AuthorService
}

func NewAuthorHandler(service service.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Create handles POST /api/v1/authors.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindAndValidate(c, &req) {
		return
	}

	author, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Author created successfully", author)
}

// GetByID handles GET /api/v1/authors/:id.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Author retrieved successfully", author)
}

// List handles GET /api/v1/authors.
func (h *AuthorHandler) List(c *gin.Context) {
	req := pagination.Parse(c, 20, "name")

	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Operation successful", page)
}

// Delete handles DELETE /api/v1/authors/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Author deleted successfully", nil)
}

// Exists handles GET /api/v1/authors/:id/exists.
func (h *AuthorHandler) Exists(c *gin.Context) {
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
