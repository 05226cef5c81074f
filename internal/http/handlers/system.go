package handlers

import (
	"net/http"
	"time"

	"travel-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	Success(c, http.StatusOK, "ok", gin.H{
		"time": time.Now().Format(time.RFC3339),
	})
}

// GET /api/db-check pings the database before answering.
func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		fail(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	Success(c, http.StatusOK, "database ok", nil)
}
