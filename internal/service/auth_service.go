package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// AuthService coordinates the login flow: credential verification and
// bearer token issuance.
type AuthService struct {
	customers repository.CustomerRepository
	tokenMgr  *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, customers repository.CustomerRepository) *AuthService {
	return &AuthService{
		customers: customers,
		tokenMgr:  auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
	}
}

// Login verifies a username/password pair and mints a token. An unknown
// username and a wrong password produce the identical error so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Customer, string, time.Time, error) {
	customer, err := s.customers.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Incorrect username or password")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(customer.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Incorrect username or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(customer.Username)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return customer, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
