package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// RequireOwner checks that the authenticated principal is the owner recorded
// on a resource. It must run behind Gate.Handle.
func RequireOwner(c *fiber.Ctx, ownerEmail string) (*Principal, error) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthorized access")
	}
	if !SameEmail(principal.Email, ownerEmail) {
		return nil, apperrors.NewForbidden("forbidden access")
	}
	return principal, nil
}

// SameEmail compares two principal identities. Empty never matches.
func SameEmail(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
