package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursereg/internal/config"
	"github.com/yigit/coursereg/internal/pkg/events"
	"github.com/yigit/coursereg/internal/pkg/lock"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestLoadConfigAndSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n  format: json\n"), 0o600))

	cfg, _, err := LoadConfigAndSetupLogger(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestLoadConfigAndSetupLoggerInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	_, _, err := LoadConfigAndSetupLogger(path)
	assert.Error(t, err)
}

func TestBuildDependenciesDefaults(t *testing.T) {
	cfg := testConfig(t)

	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Close(context.Background()) })

	assert.IsType(t, &lock.MemoryLocker{}, deps.Locker)
	assert.IsType(t, events.NoopPublisher{}, deps.Publisher)
	assert.False(t, deps.Tracing.Enabled())
	assert.NotNil(t, deps.RegistrationService)
	assert.NotNil(t, deps.RegistrationController)
	assert.NotNil(t, deps.HealthController)
}

func TestBuildDependenciesRejectsBadRedisURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.Redis.URL = "not a url"

	_, err := BuildDependencies(cfg, nil, zerolog.Nop())
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestSetupRouterServesHealthAndMetrics(t *testing.T) {
	cfg := testConfig(t)
	deps, err := BuildDependencies(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Close(context.Background()) })

	router := SetupRouter(cfg, deps, zerolog.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
