package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/app/models/dto"
)

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthController serves the liveness endpoint
type HealthController struct {
	database HealthChecker
	redis    HealthChecker
}

// NewHealthController creates a new HealthController. redis may be nil when
// no redis is configured.
func NewHealthController(database, redis HealthChecker) *HealthController {
	return &HealthController{database: database, redis: redis}
}

// Health reports database and redis reachability
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "All dependencies reachable"
// @Failure 503 {object} dto.HealthResponse "A dependency is unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "ok",
		Database: c.database.Healthy(ctx.Request.Context()),
	}
	healthy := resp.Database
	if c.redis != nil {
		up := c.redis.Healthy(ctx.Request.Context())
		resp.Redis = &up
		healthy = healthy && up
	}

	status := http.StatusOK
	if !healthy {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}
