// Package auth issues and reads the bearer tokens that guard operator routes.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the iss claim of every token minted here.
const Issuer = "payrecon"

// Service mints operator tokens signed with HS256.
type Service struct {
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

// NewWithJWT creates a token service.
func NewWithJWT(cfg *config.Jwt, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, logger: logger.With("service", "auth"), now: time.Now}
}

// GenerateToken returns a signed token for operator subject.
func (s *Service) GenerateToken(subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if s.cfg == nil || s.cfg.Secret == "" {
		return "", errors.New("jwt secret is not configured")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "subject", subject, "error", err)
		return "", err
	}
	s.logger.Info("GenerateToken successful", "subject", subject, "expires", claims.ExpiresAt.Time)
	return token, nil
}

// Subject extracts the operator from a parsed token.
func Subject(token *jwt.Token) (string, error) {
	if token == nil {
		return "", domain.ErrUnauthorized
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
