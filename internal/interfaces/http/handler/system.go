package handler

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger is a dependency whose reachability the health check reports
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	startTime time.Time
	checks    map[string]Pinger
	timeout   time.Duration
}

// NewSystemHandler creates a new SystemHandler. Every entry in checks must
// answer Ping for the service to report healthy.
func NewSystemHandler(name, version string, checks map[string]Pinger) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		startTime: time.Now(),
		checks:    checks,
		timeout:   2 * time.Second,
	}
}

// HealthResponse reports the state of the service and its dependencies
type HealthResponse struct {
	Status string            `json:"status" example:"healthy"`
	Checks map[string]string `json:"checks"`
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name" example:"campaign-backend"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// Health godoc
// @Summary      Health check
// @Description  Pings the database and other registered dependencies
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Failure      503 {object} dto.Response{data=HealthResponse}
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{Status: "healthy", Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			resp.Status = "unhealthy"
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}

	if resp.Status != "healthy" {
		c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Data: resp})
		return
	}
	h.Success(c, resp)
}

// GetSystemInfo godoc
// @Summary      Get system information
// @Description  Returns basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=SystemInfoResponse}
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
