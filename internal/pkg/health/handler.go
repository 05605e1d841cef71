package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/campuspool/campuspool/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Checker verifies one dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// HealthService aggregates dependency checkers for readiness probes
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]Checker),
		logger:   zapLogger,
	}
}

// AddChecker registers a dependency checker under a name
func (s *HealthService) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckAll runs every registered checker and returns per-dependency status
func (s *HealthService) CheckAll(ctx context.Context) (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	healthy := true
	results := make(map[string]string, len(s.checkers))
	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			healthy = false
			results[name] = err.Error()
			if s.logger != nil {
				s.logger.Warn("Health check failed",
					logger.String("dependency", name),
					logger.Err(err))
			}
			continue
		}
		results[name] = "ok"
	}

	return results, healthy
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *HealthService) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	// Basic ping endpoint with build information
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	// Liveness
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Readiness: all registered dependencies must answer
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		results, healthy := service.CheckAll(ctx)
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, map[string]interface{}{
			"healthy":      healthy,
			"dependencies": results,
		})
	})
}
