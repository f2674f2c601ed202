package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 30,
		BcryptCost:            bcrypt.MinCost,
	}
}

func newTestCustomerService(repo *fakeCustomerRepo) (*CustomerService, *AuthService) {
	cfg := testAuthConfig()
	authService := NewAuthService(cfg, repo)
	customerService := NewCustomerService(cfg, CustomerDependencies{
		CustomerRepo: repo,
		AddressRepo:  &fakeAddressRepo{addresses: map[int64][]domain.Address{}},
		FavoriteRepo: &fakeFavoriteRepo{},
		TokenManager: authService.TokenManager(),
		Dispatcher:   events.NewInMemoryDispatcher(nil),
	})
	return customerService, authService
}

func registerInput() RegisterInput {
	return RegisterInput{
		FirstName:    "Jane",
		LastName:     "Doe",
		Username:     "jdoe",
		Password:     "secret123",
		PhoneNumbers: []string{"555-0100"},
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, _ := newTestCustomerService(repo)

	customer, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", customer.PasswordHash)
	assert.NoError(t, auth.ComparePassword(customer.PasswordHash, "secret123"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, _ := newTestCustomerService(repo)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerInput())
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "username already taken. choose another one", domainErr.Message)
	assert.Len(t, repo.customers, 1)
}

// racyCustomerRepo simulates the register race loser: the pre-check sees
// no record but the insert hits the unique constraint.
type racyCustomerRepo struct {
	*fakeCustomerRepo
}

func (r *racyCustomerRepo) GetByUsername(context.Context, string) (*domain.Customer, error) {
	return nil, pgx.ErrNoRows
}

func TestRegisterDuplicateRaceMapsConstraintViolation(t *testing.T) {
	inner := newFakeCustomerRepo()
	inner.customers["jdoe"] = &domain.Customer{Username: "jdoe"}
	repo := &racyCustomerRepo{fakeCustomerRepo: inner}

	cfg := testAuthConfig()
	authService := NewAuthService(cfg, repo)
	svc := NewCustomerService(cfg, CustomerDependencies{
		CustomerRepo: repo,
		AddressRepo:  &fakeAddressRepo{addresses: map[int64][]domain.Address{}},
		FavoriteRepo: &fakeFavoriteRepo{},
		TokenManager: authService.TokenManager(),
	})

	_, err := svc.Register(context.Background(), registerInput())
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "username already taken. choose another one", domainErr.Message)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, authSvc := newTestCustomerService(repo)

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, _, _, unknownErr := authSvc.Login(context.Background(), "ghost", "secret123")
	_, _, _, wrongErr := authSvc.Login(context.Background(), "jdoe", "wrongpass")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(unknownErr).HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(wrongErr).HTTPStatus)
}

func TestUpdateNoFields(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, _ := newTestCustomerService(repo)

	customer, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	before := *repo.customers["jdoe"]

	_, _, err = svc.Update(context.Background(), customer, UpdateInput{})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "No field to update", domainErr.Message)
	assert.Equal(t, before, *repo.customers["jdoe"])
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, _ := newTestCustomerService(repo)

	customer, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	first := "Janet"
	phones := []string{"555-0199"}
	token, exp, err := svc.Update(context.Background(), customer, UpdateInput{
		FirstName:    &first,
		PhoneNumbers: &phones,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	stored := repo.customers["jdoe"]
	assert.Equal(t, "Janet", stored.FirstName)
	assert.Equal(t, "Doe", stored.LastName)
	assert.Equal(t, []string{"555-0199"}, stored.PhoneNumbers)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "secret123"))
}

func TestDeleteWrongPassword(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, _ := newTestCustomerService(repo)

	customer, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), customer, "wrongpass")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "incorrect password", domainErr.Message)
	assert.Contains(t, repo.customers, "jdoe")
}

func TestDeleteCorrectPassword(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, _ := newTestCustomerService(repo)

	customer, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), customer, "secret123"))
	assert.NotContains(t, repo.customers, "jdoe")

	_, err = repo.GetByUsername(context.Background(), "jdoe")
	assert.Error(t, err)
}

func TestCredentialFlowEndToEnd(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc, authSvc := newTestCustomerService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	customer, token, _, err := authSvc.Login(ctx, "jdoe", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", customer.Username)

	claims, err := authSvc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Subject)

	newPassword := "newpass456"
	newToken, _, err := svc.Update(ctx, customer, UpdateInput{Password: &newPassword})
	require.NoError(t, err)

	claims, err = authSvc.TokenManager().ParseToken(newToken)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Subject)

	_, _, _, err = authSvc.Login(ctx, "jdoe", "secret123")
	assert.Error(t, err)

	_, _, _, err = authSvc.Login(ctx, "jdoe", "newpass456")
	assert.NoError(t, err)
}

func TestAddresses(t *testing.T) {
	repo := newFakeCustomerRepo()
	cfg := testAuthConfig()
	authService := NewAuthService(cfg, repo)
	addressRepo := &fakeAddressRepo{addresses: map[int64][]domain.Address{
		7: {{ID: 1, StreetName: "Main", CustomerID: 7}},
	}}
	svc := NewCustomerService(cfg, CustomerDependencies{
		CustomerRepo: repo,
		AddressRepo:  addressRepo,
		FavoriteRepo: &fakeFavoriteRepo{},
		TokenManager: authService.TokenManager(),
	})

	addresses, err := svc.Addresses(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)

	_, err = svc.Addresses(context.Background(), 8)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestFavorites(t *testing.T) {
	repo := newFakeCustomerRepo()
	cfg := testAuthConfig()
	authService := NewAuthService(cfg, repo)
	favoriteRepo := &fakeFavoriteRepo{
		lists: map[int64]*domain.FavoriteList{
			3: {ID: 11, TotalPrice: 42.50, CustomerID: 3},
		},
		items: map[int64][]domain.FavoriteListItem{
			11: {{FavoriteID: 11, ProductID: 5, Quantity: 2}},
		},
	}
	svc := NewCustomerService(cfg, CustomerDependencies{
		CustomerRepo: repo,
		AddressRepo:  &fakeAddressRepo{addresses: map[int64][]domain.Address{}},
		FavoriteRepo: favoriteRepo,
		TokenManager: authService.TokenManager(),
	})

	list, items, err := svc.Favorites(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), list.ID)
	assert.Len(t, items, 1)

	_, _, err = svc.Favorites(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}
