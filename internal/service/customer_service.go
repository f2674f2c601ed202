package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CustomerService owns the customer credential lifecycle: registration,
// partial profile updates and password-confirmed deletion.
type CustomerService struct {
	customers  repository.CustomerRepository
	addresses  repository.AddressRepository
	favorites  repository.FavoriteRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// CustomerDependencies bundles collaborators for the customer service.
type CustomerDependencies struct {
	CustomerRepo repository.CustomerRepository
	AddressRepo  repository.AddressRepository
	FavoriteRepo repository.FavoriteRepository
	TokenManager *auth.TokenManager
	Dispatcher   events.Dispatcher
}

// RegisterInput describes the registration payload.
type RegisterInput struct {
	FirstName    string
	LastName     string
	Username     string
	Password     string
	PhoneNumbers []string
}

// UpdateInput carries the optional profile fields; nil means untouched.
type UpdateInput struct {
	FirstName    *string
	LastName     *string
	Password     *string
	PhoneNumbers *[]string
}

// Empty reports whether no field was supplied.
func (u UpdateInput) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Password == nil && u.PhoneNumbers == nil
}

// NewCustomerService builds the service.
func NewCustomerService(cfg config.AuthConfig, deps CustomerDependencies) *CustomerService {
	return &CustomerService{
		customers:  deps.CustomerRepo,
		addresses:  deps.AddressRepo,
		favorites:  deps.FavoriteRepo,
		tokenMgr:   deps.TokenManager,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new customer record with a hashed password. No token
// is issued; a separate login is required. The duplicate pre-check gives
// the friendly message, the store's unique constraint settles races.
func (s *CustomerService) Register(ctx context.Context, input RegisterInput) (*domain.Customer, error) {
	if _, err := s.customers.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewValidationError("username already taken. choose another one", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	customer := &domain.Customer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		PasswordHash: hash,
		PhoneNumbers: input.PhoneNumbers,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if err == repository.ErrUsernameTaken {
			return nil, apperrors.NewValidationError("username already taken. choose another one", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventCustomerRegistered, customer.Username, events.CustomerRegisteredPayload{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
	})
	return customer, nil
}

// Update applies the supplied fields to the authenticated customer and
// reissues a fresh token for the same subject.
func (s *CustomerService) Update(ctx context.Context, current *domain.Customer, input UpdateInput) (string, time.Time, error) {
	if input.Empty() {
		return "", time.Time{}, apperrors.NewValidationError("No field to update", nil)
	}

	changed := make([]string, 0, 4)
	if input.FirstName != nil {
		current.FirstName = *input.FirstName
		changed = append(changed, "first_name")
	}
	if input.LastName != nil {
		current.LastName = *input.LastName
		changed = append(changed, "last_name")
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return "", time.Time{}, apperrors.MapError(err)
		}
		current.PasswordHash = hash
		changed = append(changed, "password")
	}
	if input.PhoneNumbers != nil {
		current.PhoneNumbers = *input.PhoneNumbers
		changed = append(changed, "phone_numbers")
	}

	if err := s.customers.Update(ctx, current); err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(current.Username)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventCustomerUpdated, current.Username, events.CustomerUpdatedPayload{
		CustomerID: current.ID,
		Fields:     changed,
	})
	return token, exp, nil
}

// Delete removes the customer record after re-verifying the current
// password. Dependent rows cascade at the store level.
func (s *CustomerService) Delete(ctx context.Context, current *domain.Customer, password string) error {
	if err := auth.ComparePassword(current.PasswordHash, password); err != nil {
		return apperrors.NewValidationError("incorrect password", nil)
	}

	if err := s.customers.DeleteByUsername(ctx, current.Username); err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventCustomerDeleted, current.Username, events.CustomerDeletedPayload{
		CustomerID: current.ID,
	})
	return nil
}

// Addresses returns every address stored for a customer id. An empty
// result is reported as not-found, mirroring the public endpoint.
func (s *CustomerService) Addresses(ctx context.Context, customerID int64) ([]domain.Address, error) {
	addresses, err := s.addresses.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if len(addresses) == 0 {
		return nil, apperrors.NewNotFound("no address found for this customer")
	}
	return addresses, nil
}

// Favorites returns the customer's wishlist and its items. A customer
// without a list gets a not-found.
func (s *CustomerService) Favorites(ctx context.Context, customerID int64) (*domain.FavoriteList, []domain.FavoriteListItem, error) {
	list, err := s.favorites.GetByCustomer(ctx, customerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("no favorite list found for this customer")
		}
		return nil, nil, apperrors.MapError(err)
	}

	items, err := s.favorites.ListItems(ctx, list.ID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return list, items, nil
}

func (s *CustomerService) publish(ctx context.Context, eventType events.EventType, username string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
