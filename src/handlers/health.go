package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vwoinilowicz/portfolio-backend/src/database"
)

var startTime = time.Now()

// HealthHandler handles health check requests
type HealthHandler struct {
	db *database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealth returns liveness plus a database check.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	start := time.Now()
	err := h.db.Health(c.Request.Context())
	dbLatency := time.Since(start)

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":   false,
			"message":   "Base de datos no disponible",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "API funcionando correctamente",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"db_latency": dbLatency.String(),
		"uptime":     time.Since(startTime).String(),
	})
}
