package handler

import (
	"github.com/gin-gonic/gin"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/service"
	"publisher-catalog/internal/shared/pagination"
	"publisher-catalog/internal/shared/response"
)

type MagazineHandler struct {
	service service.MagazineService
}

func NewMagazineHandler(service service.MagazineService) *MagazineHandler {
	return &MagazineHandler{service: service}
}

// Create handles POST /api/v1/magazines.
func (h *MagazineHandler) Create(c *gin.Context) {
	var req dto.CreateMagazineRequest
	if !bindAndValidate(c, &req) {
		return
	}

	magazine, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Magazine created successfully", magazine)
}

// Update handles PUT /api/v1/magazines/:id.
func (h *MagazineHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMagazineRequest
	if !bindAndValidate(c, &req) {
		return
	}

	magazine, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Magazine updated successfully", magazine)
}

// GetByID handles GET /api/v1/magazines/:id.
func (h *MagazineHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	magazine, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Magazine retrieved successfully", magazine)
}

// List handles GET /api/v1/magazines.
func (h *MagazineHandler) List(c *gin.Context) {
	req := pagination.Parse(c, 10, "title")

	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Magazines retrieved successfully", page)
}

// Delete handles DELETE /api/v1/magazines/:id.
func (h *MagazineHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Magazine deleted successfully", nil)
}

// Exists handles GET /api/v1/magazines/:id/exists.
func (h *MagazineHandler) Exists(c *gin.Context) {
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
