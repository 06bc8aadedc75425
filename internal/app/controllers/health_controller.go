package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okanck/studentapi/internal/app/models/dto"
)

// dbProbeTimeout bounds the connectivity probe so a hung database cannot
// stall the health endpoint.
const dbProbeTimeout = 5 * time.Second

// DBPinger is the connectivity probe the health endpoint depends on.
// *pgxpool.Pool satisfies it.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports data store reachability
type HealthController struct {
	db DBPinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db DBPinger) *HealthController {
	return &HealthController{
		db: db,
	}
}

// CheckDB probes database connectivity
// @Summary Database health check
// @Description Reports whether the data store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Database reachable"
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /health/db [get]
func (c *HealthController) CheckDB(ctx *gin.Context) {
	probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), dbProbeTimeout)
	defer cancel()

	if err := c.db.Ping(probeCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: dto.HealthStatusUnhealthy,
			Error:  err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status: dto.HealthStatusHealthy,
	})
}
