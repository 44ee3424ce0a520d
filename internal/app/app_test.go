package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWiresSQLiteApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LOG_MODE", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "crossword.db"))
	t.Setenv("GENERATOR_COMMAND", "sh")
	script := filepath.Join(dir, "gen.sh")
	require.NoError(t, os.WriteFile(script, []byte("exit 1\n"), 0o755))
	t.Setenv("GENERATOR_SCRIPT", script)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("OTEL_ENABLED", "")

	a, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.Nil(t, a.Clients.PuzzleEvents)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/puzzles/00000000-0000-0000-0000-000000000001", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
