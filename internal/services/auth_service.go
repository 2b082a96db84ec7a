// internal/services/auth_service.go
package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/wholesalenaija/admin-gateway/internal/config"
	"github.com/wholesalenaija/admin-gateway/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the dashboard operator locally. Admin identity
// lives in gateway config, not in the marketplace backend.
type AuthService struct {
	cfg *config.Config
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	if email != s.cfg.Admin.Email || s.cfg.Admin.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(email)
}

// Refresh exchanges a valid refresh token for a fresh pair. The subject must
// still match the configured admin; rotating the admin email invalidates
// outstanding refresh tokens.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	email, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if email != s.cfg.Admin.Email {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(email)
}

func (s *AuthService) issueTokens(email string) (*TokenPair, error) {
	access, err := utils.GenerateJWT(email, "admin", s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := utils.GenerateRefreshToken(email, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
