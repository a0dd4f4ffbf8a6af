package auth

import (
	"errors"
	"strings"
)

// ErrInvalidName is returned when a display name doesn't meet constraints.
var ErrInvalidName = errors.New("invalid display name")

// Service issues and validates guest display-name tokens.
type Service struct {
	jwtConfig *JWTConfig
}

// NewService creates a new guest-token service.
func NewService(jwtConfig *JWTConfig) *Service {
	return &Service{jwtConfig: jwtConfig}
}

// GuestToken validates a display name and returns a signed token for it.
func (s *Service) GuestToken(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < 1 || len(name) > 32 {
		return "", ErrInvalidName
	}
	return GenerateToken(s.jwtConfig, name)
}

// ValidateToken returns the claims of a valid guest token.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	return ValidateToken(s.jwtConfig, token)
}
