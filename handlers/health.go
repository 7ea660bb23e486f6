package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"expense-tracker-api/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness and readiness probes. Both issue a
// trivial query so a broken pool shows up as 503 rather than a healthy lie.
type HealthHandler struct {
	DB      *sql.DB
	Cfg     *config.Config
	Started time.Time
}

func NewHealthHandler(db *sql.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{DB: db, Cfg: cfg, Started: time.Now()}
}

func (h *HealthHandler) uptime() float64 {
	return time.Since(h.Started).Seconds()
}

// Health reports overall service health including database connectivity.
func (h *HealthHandler) Health(c *gin.Context) {
	var status int
	err := h.DB.QueryRow(`SELECT 1 AS status`).Scan(&status)
	if err != nil {
		log.Printf("❌ Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"error":     "Database connection failed",
			"uptime":    h.uptime(),
		})
		return
	}

	dbStatus := "healthy"
	if status != 1 {
		dbStatus = "unhealthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"version":     h.Cfg.Version,
		"environment": h.Cfg.Environment,
		"database":    dbStatus,
		"uptime":      h.uptime(),
	})
}

// Ready reports whether the service can take traffic.
func (h *HealthHandler) Ready(c *gin.Context) {
	var one int
	if err := h.DB.QueryRow(`SELECT 1`).Scan(&one); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not ready",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
