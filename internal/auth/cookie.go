package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultCookieName is the cookie carrying the credential.
const DefaultCookieName = "token"

var cookieExpired = time.Unix(0, 0).UTC()

// CookieTransport carries credentials between client and server in a cookie.
type CookieTransport struct {
	name string
}

// NewCookieTransport builds a transport for the named cookie.
func NewCookieTransport(name string) *CookieTransport {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieTransport{name: name}
}

// Name returns the cookie name.
func (t *CookieTransport) Name() string {
	return t.name
}

// Attach sets the credential cookie. SameSite=None is only ever paired with
// Secure; insecure channels get SameSite=Strict.
func (t *CookieTransport) Attach(c *fiber.Ctx, token string, expiresAt time.Time, secure bool) {
	c.Cookie(t.cookie(token, expiresAt, secure))
}

// Detach clears the credential cookie using the attributes it was set with.
func (t *CookieTransport) Detach(c *fiber.Ctx, secure bool) {
	c.Cookie(t.cookie("", cookieExpired, secure))
}

// Read extracts the raw credential. ok is false when the cookie is absent.
func (t *CookieTransport) Read(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(t.name)
	if token == "" {
		return "", false
	}
	return token, true
}

func (t *CookieTransport) cookie(value string, expiresAt time.Time, secure bool) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteStrictMode
	if secure {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     t.name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}
