package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sectiontrack/internal/app/controllers"
	"github.com/yigit/sectiontrack/internal/config"
	"github.com/yigit/sectiontrack/internal/middleware"
)

type upChecker struct{}

func (upChecker) Healthy(context.Context) bool { return true }

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func testDeps(limiter middleware.Limiter) *Dependencies {
	return &Dependencies{
		UserController:    controllers.NewUserController(nil),
		SectionController: controllers.NewSectionController(nil),
		StudentController: controllers.NewStudentController(nil),
		HealthController:  controllers.NewHealthController(upChecker{}, nil),
		Limiter:           limiter,
		Metrics:           middleware.NewMetrics(prometheus.NewRegistry()),
	}
}

func get(t *testing.T, h http.Handler, path string) int {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestSetupRouterInfrastructureRoutes(t *testing.T) {
	cfg := testConfig(t)
	router := SetupRouter(cfg, testDeps(nil), testLogger())

	assert.Equal(t, http.StatusOK, get(t, router, "/health"))
	assert.Equal(t, http.StatusOK, get(t, router, cfg.Metrics.Path))
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/students/abc"))
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/v1/sections/0"))
}

func TestSetupRouterRateLimitsOnlyAPI(t *testing.T) {
	cfg := testConfig(t)
	router := SetupRouter(cfg, testDeps(denyAll{}), testLogger())

	assert.Equal(t, http.StatusTooManyRequests, get(t, router, "/sections/1"))
	assert.Equal(t, http.StatusTooManyRequests, get(t, router, "/api/v1/users"))
	assert.Equal(t, http.StatusOK, get(t, router, "/health"))
	assert.Equal(t, http.StatusOK, get(t, router, cfg.Metrics.Path))
}

func TestLoadConfigAndSetupLoggerHonoursConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9191\"\nlogging:\n  level: debug\n"), 0o600))
	t.Setenv(config.EnvPrefix+"CONFIG", path)

	cfg, _, err := LoadConfigAndSetupLogger()
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
