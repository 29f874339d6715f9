package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const secureChannelKey = "secure_channel"

// SecureChannel classifies each request once as secure or not and stores the
// result for downstream handlers. A request is secure when it arrived over TLS
// or, with trustProxy set, when X-Forwarded-Proto declares https.
func SecureChannel(trustProxy bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(secureChannelKey, detectSecure(c, trustProxy))
		return c.Next()
	}
}

// IsSecureChannel returns the classification made by SecureChannel. Requests
// that bypassed the middleware are treated as insecure.
func IsSecureChannel(c *fiber.Ctx) bool {
	secure, _ := c.Locals(secureChannelKey).(bool)
	return secure
}

func detectSecure(c *fiber.Ctx, trustProxy bool) bool {
	if c.Context().IsTLS() {
		return true
	}
	if !trustProxy {
		return false
	}
	// Proxies may append to the header; the left-most value is the client hop.
	proto := c.Get(fiber.HeaderXForwardedProto)
	if idx := strings.IndexByte(proto, ','); idx >= 0 {
		proto = proto[:idx]
	}
	return strings.EqualFold(strings.TrimSpace(proto), "https")
}
