package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/auth"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

func TestLoginLimiterThrottles(t *testing.T) {
	limiter := auth.NewLoginLimiter(10)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Post("/jwt", limiter.Handle, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/jwt", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/jwt", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestNilLoginLimiterPassesThrough(t *testing.T) {
	limiter := auth.NewLoginLimiter(0)
	require.Nil(t, limiter)

	app := fiber.New()
	app.Post("/jwt", limiter.Handle, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/jwt", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
