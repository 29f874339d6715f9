package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const signingKeyInfo = "job-portal/access-token/hs256"

var (
	// ErrTokenMalformed reports a credential that is not a well-formed JWT.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignatureInvalid reports a signature or algorithm mismatch.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired reports a credential past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrMissingEmail is returned when issuing a credential without a principal.
	ErrMissingEmail = errors.New("email claim required")
)

// PrincipalClaims are the identity fields carried by a credential.
type PrincipalClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Claims describes JWT payload.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Principal returns the identity portion of the claims.
func (c *Claims) Principal() PrincipalClaims {
	return PrincipalClaims{Email: c.Email, Name: c.Name}
}

// TokenCodec issues and verifies credentials.
type TokenCodec interface {
	Issue(principal PrincipalClaims) (string, time.Time, error)
	Verify(token string) (*Claims, error)
}

// TokenManager handles issuing and validating HS256 JWT tokens.
type TokenManager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// TokenOption customises a TokenManager.
type TokenOption func(*TokenManager)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(tm *TokenManager) {
		if now != nil {
			tm.now = now
		}
	}
}

// NewTokenManager builds a new manager. The HMAC key is derived from secret.
func NewTokenManager(secret string, ttl time.Duration, opts ...TokenOption) *TokenManager {
	if ttl <= 0 {
		ttl = 10 * time.Hour
	}
	tm := &TokenManager{key: deriveKey(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

func deriveKey(secret string) []byte {
	key := make([]byte, sha256.Size)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		panic(fmt.Sprintf("derive signing key: %v", err))
	}
	return key
}

// TTL returns the configured credential lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue builds and signs a JWT for the principal.
func (tm *TokenManager) Issue(principal PrincipalClaims) (string, time.Time, error) {
	email := strings.TrimSpace(principal.Email)
	if email == "" {
		return "", time.Time{}, ErrMissingEmail
	}

	// exp is encoded in whole seconds; the returned expiry must match it.
	now := tm.now().Truncate(jwt.TimePrecision)
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Email: email,
		Name:  strings.TrimSpace(principal.Name),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify validates the token and returns its claims. Failures are reported as
// ErrTokenMalformed, ErrTokenSignatureInvalid or ErrTokenExpired.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenSignatureInvalid
		}
		return tm.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return nil, classify(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}
