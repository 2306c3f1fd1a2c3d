package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matiascamiletti/mc-odata-go/internal/core/apperror"
	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/storage/postgres"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	*BaseHandler
	pool *postgres.Pool
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(base *BaseHandler, pool *postgres.Pool) *HealthHandler {
	return &HealthHandler{BaseHandler: base, pool: pool}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /health/ready - verifies the database connection.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		h.Error(c, apperror.NewDatabase(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
