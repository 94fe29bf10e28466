package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"climatestats.app/internal/ports"
)

// HealthResponse is the aggregated health of the service
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: ports.StatusHealthy, Components: components}
	status := http.StatusOK
	for _, component := range components {
		if !component.IsHealthy() {
			response.Status = ports.StatusUnhealthy
			status = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(status, response)
}
