package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
)

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	if _, exists := f.customers[customer.Username]; exists {
		return repository.ErrUsernameTaken
	}
	f.nextID++
	customer.ID = f.nextID
	clone := *customer
	f.customers[customer.Username] = &clone
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, exists := f.customers[customer.Username]; !exists {
		return pgx.ErrNoRows
	}
	clone := *customer
	f.customers[customer.Username] = &clone
	return nil
}

func (f *fakeCustomerRepo) GetByUsername(_ context.Context, username string) (*domain.Customer, error) {
	customer, exists := f.customers[username]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	clone := *customer
	return &clone, nil
}

func (f *fakeCustomerRepo) DeleteByUsername(_ context.Context, username string) error {
	if _, exists := f.customers[username]; !exists {
		return pgx.ErrNoRows
	}
	delete(f.customers, username)
	return nil
}

type fakeAddressRepo struct {
	addresses map[int64][]domain.Address
}

func (f *fakeAddressRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Address, error) {
	return f.addresses[customerID], nil
}

type fakeFavoriteRepo struct {
	lists map[int64]*domain.FavoriteList
	items map[int64][]domain.FavoriteListItem
}

func (f *fakeFavoriteRepo) GetByCustomer(_ context.Context, customerID int64) (*domain.FavoriteList, error) {
	list, exists := f.lists[customerID]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return list, nil
}

func (f *fakeFavoriteRepo) ListItems(_ context.Context, favoriteID int64) ([]domain.FavoriteListItem, error) {
	return f.items[favoriteID], nil
}

type fakeProductRepo struct {
	products  map[int64]*domain.Product
	listed    []domain.Product
	listCalls int
	lastFilt  repository.ProductFilter
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	product, exists := f.products[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return product, nil
}

func (f *fakeProductRepo) ListWithFilter(_ context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	f.listCalls++
	f.lastFilt = filter
	return f.listed, nil
}

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	category, exists := f.categories[name]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return category, nil
}

type fakeReviewRepo struct {
	reviews map[int64][]domain.Review
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, productID int64) ([]domain.Review, error) {
	return f.reviews[productID], nil
}

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	items  map[int64][]domain.OrderItem
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	order, exists := f.orders[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	return order, nil
}

func (f *fakeOrderRepo) ListItems(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	return f.items[orderID], nil
}

type fakeHistoryRepo struct {
	entries []domain.OrderHistoryLog
	nextID  int64
}

func (f *fakeHistoryRepo) Create(_ context.Context, entry *domain.OrderHistoryLog) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeHistoryRepo) ListByOrder(_ context.Context, orderID int64) ([]domain.OrderHistoryLog, error) {
	var result []domain.OrderHistoryLog
	for _, entry := range f.entries {
		if entry.OrderID == orderID {
			result = append(result, entry)
		}
	}
	return result, nil
}
