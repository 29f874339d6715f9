package service

import (
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/job-portal/internal/auth"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// AuthService issues credentials for callers that identified themselves on
// the client side. It does not verify passwords; the identity provider in
// front of the portal already did.
type AuthService struct {
	tokens auth.TokenCodec
}

// NewAuthService builds the service.
func NewAuthService(tokens auth.TokenCodec) *AuthService {
	return &AuthService{tokens: tokens}
}

// IssueCredential signs a credential for the given principal.
func (s *AuthService) IssueCredential(email, name string) (string, time.Time, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", time.Time{}, apperrors.NewValidationError("email is required", map[string]any{"field": "email"})
	}
	token, exp, err := s.tokens.Issue(auth.PrincipalClaims{Email: email, Name: strings.TrimSpace(name)})
	if err != nil {
		if errors.Is(err, auth.ErrMissingEmail) {
			return "", time.Time{}, apperrors.NewValidationError("email is required", map[string]any{"field": "email"})
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}
