package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	infra "publisher-catalog/internal/infrastructure/database"
	"publisher-catalog/internal/shared/response"
)

type HealthHandler struct {
	db *infra.PostgresDB
}

func NewHealthHandler(db *infra.PostgresDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /api/v1/health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	response.OK(c, "Service is healthy", gin.H{"status": "up"})
}
