package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Chat      string    `json:"chat"`
	Mail      string    `json:"mail"`
}

// Integrations reports which outbound integrations have credentials.
type Integrations struct {
	Chat bool
	Mail bool
}

type HealthHandler struct {
	serviceName  string
	version      string
	integrations Integrations
	now          func() time.Time
}

func NewHealthHandler(serviceName, version string, in Integrations) *HealthHandler {
	return &HealthHandler{
		serviceName:  serviceName,
		version:      version,
		integrations: in,
		now:          time.Now,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Chat:      configuredStatus(h.integrations.Chat),
		Mail:      configuredStatus(h.integrations.Mail),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not_configured"
}
