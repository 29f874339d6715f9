package util_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/domain"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

func TestToDomainErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{fmt.Errorf("get job: %w", domain.ErrNotFound), "NOT_FOUND", http.StatusNotFound},
		{fmt.Errorf("insert: %w", domain.ErrDuplicate), "CONFLICT", http.StatusConflict},
		{fmt.Errorf("%w: dial tcp", domain.ErrUnavailable), "UNAVAILABLE", http.StatusServiceUnavailable},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
		{fiber.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
		{apperrors.NewForbidden("forbidden access"), "FORBIDDEN", http.StatusForbidden},
	}
	for _, tc := range cases {
		de := apperrors.ToDomainError(tc.err)
		require.Equal(t, tc.code, de.Code, tc.err.Error())
		require.Equal(t, tc.status, de.HTTPStatus, tc.err.Error())
	}
}

func TestToDomainErrorNil(t *testing.T) {
	require.Nil(t, apperrors.ToDomainError(nil))
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewUnavailable(cause)
	require.ErrorIs(t, err, cause)
}
