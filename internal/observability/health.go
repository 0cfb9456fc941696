// Package observability provides health checks and metrics for the native shell.
package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HealthChecker reports the health of one component
type HealthChecker interface {
	// HealthCheck returns nil if healthy, error if unhealthy
	HealthCheck(ctx context.Context) error
	// Name returns the name of the component being checked
	Name() string
}

// CheckFunc adapts a function into a HealthChecker.
type CheckFunc struct {
	Component string
	Check     func(ctx context.Context) error
}

// Name implements HealthChecker.
func (c CheckFunc) Name() string { return c.Component }

// HealthCheck implements HealthChecker.
func (c CheckFunc) HealthCheck(ctx context.Context) error { return c.Check(ctx) }

// HealthStatus represents the health status of a component
type HealthStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "healthy" or "unhealthy"
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// HealthResponse represents the overall health response
type HealthResponse struct {
	Status     string         `json:"status"` // "healthy" or "unhealthy"
	Timestamp  time.Time      `json:"timestamp"`
	Components []HealthStatus `json:"components"`
}

// HealthManager runs the registered health checks
type HealthManager struct {
	logger   *zap.Logger
	checkers []HealthChecker
	timeout  time.Duration
}

// NewHealthManager creates a new health manager
func NewHealthManager(logger *zap.Logger) *HealthManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthManager{
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// AddHealthChecker registers a health checker
func (hm *HealthManager) AddHealthChecker(checker HealthChecker) {
	hm.checkers = append(hm.checkers, checker)
}

// HealthzHandler returns an HTTP handler for the /healthz endpoint
func (hm *HealthManager) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), hm.timeout)
		defer cancel()

		response := hm.Check(ctx)

		statusCode := http.StatusOK
		if response.Status != "healthy" {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			hm.logger.Error("Failed to encode health response", zap.Error(err))
		}
	}
}

// Check runs every registered checker
func (hm *HealthManager) Check(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now(),
		Components: make([]HealthStatus, 0, len(hm.checkers)),
	}

	for _, checker := range hm.checkers {
		start := time.Now()
		status := HealthStatus{
			Name:   checker.Name(),
			Status: "healthy",
		}

		if err := checker.HealthCheck(ctx); err != nil {
			status.Status = "unhealthy"
			status.Error = err.Error()
			response.Status = "unhealthy"
			hm.logger.Warn("Health check failed",
				zap.String("component", checker.Name()),
				zap.Error(err))
		}

		status.Latency = time.Since(start).String()
		response.Components = append(response.Components, status)
	}

	return response
}
