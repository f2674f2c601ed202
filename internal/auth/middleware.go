package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

const customerKey = "auth_customer"

// Middleware validates bearer tokens and loads the customer they name.
// Every failure collapses into the same unauthorized reply so callers
// cannot distinguish a bad token from a missing account.
type Middleware struct {
	tokens    *TokenManager
	customers repository.CustomerRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, customers repository.CustomerRepository) *Middleware {
	return &Middleware{tokens: tokens, customers: customers}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	customer, err := m.customers.GetByUsername(c.Context(), claims.Subject)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("Could not validate credentials")
		}
		return apperrors.MapError(err)
	}

	c.Locals(customerKey, customer)
	return c.Next()
}

// CustomerFromContext retrieves the authenticated customer.
func CustomerFromContext(c *fiber.Ctx) (*domain.Customer, bool) {
	val := c.Locals(customerKey)
	if val == nil {
		return nil, false
	}
	customer, ok := val.(*domain.Customer)
	return customer, ok
}
