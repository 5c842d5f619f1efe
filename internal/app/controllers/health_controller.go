package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness endpoint
type HealthController struct {
	db Pinger
}

// NewHealthController creates a HealthController. db may be nil.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports service status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (h *HealthController) Health(ctx *gin.Context) {
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Msg("Health check failed")
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("database unavailable"))
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
