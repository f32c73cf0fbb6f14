package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"publisher-catalog/internal/catalog/service"
	"publisher-catalog/internal/shared/pagination"
	"publisher-catalog/internal/shared/response"
)

type PublicationHandler struct {
	service service.PublicationService
}

func NewPublicationHandler(service service.PublicationService) *PublicationHandler {
	return &PublicationHandler{service: service}
}

// GetByID handles GET /api/v1/publications/:id.
func (h *PublicationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	publication, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Publication retrieved successfully", publication)
}

// List handles GET /api/v1/publications.
func (h *PublicationHandler) List(c *gin.Context) {
	req := pagination.Parse(c, 20, "title")

	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Publications retrieved successfully", page)
}

// Grouped handles GET /api/v1/publications/grouped.
func (h *PublicationHandler) Grouped(c *gin.Context) {
	grouped, err := h.service.GroupedByType(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Publications grouped successfully", grouped)
}

// SearchByTitle handles GET /api/v1/publications/search/title?title=...
func (h *PublicationHandler) SearchByTitle(c *gin.Context) {
	title, present := c.GetQuery("title")
	if !present {
		response.Error(c, http.StatusBadRequest, "Required parameter 'title' is missing")
		return
	}

	req := pagination.Parse(c, 20, "title")

	page, err := h.service.SearchByTitle(c.Request.Context(), title, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Publications searched successfully", page)
}

// Delete handles DELETE /api/v1/publications/:id.
func (h *PublicationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Publication deleted successfully", nil)
}

// Exists handles GET /api/v1/publications/:id/exists.
func (h *PublicationHandler) Exists(c *gin.Context) {
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

// ExistsByTitle handles GET /api/v1/publications/title/:title/exists.
func (h *PublicationHandler) ExistsByTitle(c *gin.Context) {
	exists, err := h.service.ExistsByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Existence check by title completed", exists)
}
