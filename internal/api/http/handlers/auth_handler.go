package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-portal/internal/api/dto"
	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/service"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// AuthHandler issues and clears the credential cookie.
type AuthHandler struct {
	service   *service.AuthService
	transport *auth.CookieTransport
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, transport *auth.CookieTransport) *AuthHandler {
	return &AuthHandler{service: authService, transport: transport}
}

// IssueToken POST /jwt.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	token, expiresAt, err := h.service.IssueCredential(req.Email, req.Name)
	if err != nil {
		return err
	}
	h.transport.Attach(c, token, expiresAt, auth.IsSecureChannel(c))
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.transport.Detach(c, auth.IsSecureChannel(c))
	return c.JSON(dto.SuccessResponse{Success: true})
}
