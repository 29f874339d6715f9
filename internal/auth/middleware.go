package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Email  string
	Name   string
	Claims *Claims
}

// Gate authenticates requests from the credential cookie.
type Gate struct {
	tokens    TokenCodec
	transport *CookieTransport
	logger    *zap.Logger
}

// NewGate constructs the authorization gate.
func NewGate(tokens TokenCodec, transport *CookieTransport, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{tokens: tokens, transport: transport, logger: logger}
}

// Handle enforces authentication for protected routes.
func (g *Gate) Handle(c *fiber.Ctx) error {
	token, ok := g.transport.Read(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Debug("credential rejected", zap.String("path", c.Path()), zap.Error(err))
		return apperrors.NewUnauthorized("unauthorized access")
	}

	c.Locals(principalKey, principalFrom(claims))
	return c.Next()
}

// Optional attaches the principal when a valid credential is present and
// never rejects the request.
func (g *Gate) Optional(c *fiber.Ctx) error {
	if token, ok := g.transport.Read(c); ok {
		if claims, err := g.tokens.Verify(token); err == nil {
			c.Locals(principalKey, principalFrom(claims))
		}
	}
	return c.Next()
}

func principalFrom(claims *Claims) *Principal {
	return &Principal{Email: claims.Email, Name: claims.Name, Claims: claims}
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
