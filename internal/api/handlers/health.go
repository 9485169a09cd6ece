package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler reports service liveness and engine readiness
type HealthHandler struct {
	serviceName string
	version     string
}

// HealthResponse is the health endpoint payload
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Engines   map[string]string `json:"engines"`
	Uptime    string            `json:"uptime"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

// HealthCheck handles GET /health. The engines are in-process calculators
// with no external dependencies, so readiness is constant once the server
// is up.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	engines := map[string]string{
		"arbitrage": "ready",
		"pressure":  "ready",
		"trend":     "ready",
		"fibonacci": "ready",
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   h.serviceName,
		Version:   h.version,
		Engines:   engines,
		Uptime:    time.Since(startTime).String(),
		Timestamp: time.Now(),
	})
}
