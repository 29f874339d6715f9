package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/api/http/handlers"
)

type fakePinger struct {
	enabled bool
	err     error
}

func (f fakePinger) Enabled() bool              { return f.enabled }
func (f fakePinger) Ping(context.Context) error { return f.err }

func readyStatus(t *testing.T, deps map[string]handlers.Pinger) (int, map[string]any) {
	t.Helper()
	h := handlers.NewHealthHandler("job-portal-api", "test", deps)
	app := fiber.New()
	app.Get("/health/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestReadyIgnoresDisabledDependencies(t *testing.T) {
	status, body := readyStatus(t, map[string]handlers.Pinger{
		"postgres": fakePinger{},
		"redis":    fakePinger{enabled: true},
	})
	require.Equal(t, http.StatusOK, status)
	deps := body["dependencies"].(map[string]any)
	require.Equal(t, "disabled", deps["postgres"])
	require.Equal(t, "ok", deps["redis"])
}

func TestReadyReportsUnreachableDependency(t *testing.T) {
	status, body := readyStatus(t, map[string]handlers.Pinger{
		"postgres": fakePinger{enabled: true, err: errors.New("connection refused")},
	})
	require.Equal(t, http.StatusServiceUnavailable, status)
	errBody := body["error"].(map[string]any)
	require.Equal(t, "DEPENDENCY_UNAVAILABLE", errBody["code"])
}
