package http

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HealthHandler serves liveness and version endpoints.
type HealthHandler struct {
	logger    *slog.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:    logger.With(slog.String("component", "health_handler")),
		version:   version,
		startTime: time.Now(),
	}
}

// Register attaches the health routes to an existing router so they can
// share the /api prefix with the report routes.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.GetHealth)
	r.Get("/version", h.GetVersion)
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
}

// VersionResponse is the build information payload.
type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version,omitempty"`
}

// GetHealth handles GET /api/health.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// GetVersion handles GET /api/version.
func (h *HealthHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, VersionResponse{
		Version:   h.version,
		GoVersion: runtime.Version(),
	})
}
