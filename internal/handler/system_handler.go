package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/students-api/internal/service"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/response"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler exposes liveness, readiness and metrics endpoints.
type SystemHandler struct {
	metrics *service.MetricsService
	db      Pinger
}

// NewSystemHandler constructs a system handler. Either dependency may be nil.
func NewSystemHandler(metrics *service.MetricsService, db Pinger) *SystemHandler {
	return &SystemHandler{metrics: metrics, db: db}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *SystemHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary Readiness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} response.Envelope
// @Router /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			response.Error(c, appErrors.WrapKind(err, appErrors.ErrUnavailable, "database unavailable"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
