package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// AuthService trades the owner's passphrase for an API token.
type AuthService struct {
	creds  domain.Credentials
	tokens *TokenService
}

func NewAuthService(creds domain.Credentials, tokens *TokenService) *AuthService {
	return &AuthService{
		creds:  creds,
		tokens: tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, passphrase string) (string, error) {
	if err := s.creds.Check(passphrase); err != nil {
		return "", err
	}
	return s.tokens.GenerateToken(domain.OwnerSubject)
}
