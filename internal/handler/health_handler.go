package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-boat-boat/sponsorreel/pkg/response"
)

// HealthChecker reports readiness of a backing dependency
type HealthChecker func(c *gin.Context) error

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	checks map[string]HealthChecker
}

// NewHealthHandler creates a new HealthHandler. checks may be empty for the
// fixture-backed deployment, which has no external dependencies.
func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	if checks == nil {
		checks = map[string]HealthChecker{}
	}
	return &HealthHandler{checks: checks}
}

// Health handles the health probe
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	healthy := true
	for name, check := range h.checks {
		if err := check(c); err != nil {
			status[name] = err.Error()
			healthy = false
		} else {
			status[name] = "ok"
		}
	}
	if !healthy {
		status["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, response.Error(response.ErrCodeServiceUnavailable, "One or more dependencies are down"))
		return
	}
	c.JSON(http.StatusOK, response.Success(status))
}
