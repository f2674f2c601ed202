package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func newTestCatalogService(t *testing.T, products *fakeProductRepo, categories *fakeCategoryRepo, reviews *fakeReviewRepo) *CatalogService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCatalogService(CatalogDependencies{
		ProductRepo:  products,
		CategoryRepo: categories,
		ReviewRepo:   reviews,
		Cache:        client,
		CacheTTL:     time.Minute,
	})
}

func sampleProducts() []domain.Product {
	rating := 4.5
	return []domain.Product{
		{ID: 1, Name: "Keyboard", Price: 49.99, StockCount: 12, Rating: &rating},
		{ID: 2, Name: "Mouse", Price: 19.99, StockCount: 30},
	}
}

func TestListProductsResolvesCategory(t *testing.T) {
	products := &fakeProductRepo{listed: sampleProducts()}
	categories := &fakeCategoryRepo{categories: map[string]*domain.Category{
		"electronics": {ID: 9, Name: "electronics"},
	}}
	svc := newTestCatalogService(t, products, categories, &fakeReviewRepo{})

	category := "electronics"
	result, err := svc.ListProducts(context.Background(), CatalogFilter{CategoryName: &category})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	require.NotNil(t, products.lastFilt.CategoryID)
	assert.Equal(t, int64(9), *products.lastFilt.CategoryID)
}

func TestListProductsUnknownCategoryDropsFilter(t *testing.T) {
	products := &fakeProductRepo{listed: sampleProducts()}
	svc := newTestCatalogService(t, products, &fakeCategoryRepo{}, &fakeReviewRepo{})

	category := "nonexistent"
	result, err := svc.ListProducts(context.Background(), CatalogFilter{CategoryName: &category})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Nil(t, products.lastFilt.CategoryID)
}

func TestListProductsPriceRangePassthrough(t *testing.T) {
	products := &fakeProductRepo{listed: sampleProducts()}
	svc := newTestCatalogService(t, products, &fakeCategoryRepo{}, &fakeReviewRepo{})

	minPrice, maxPrice := 10.0, 50.0
	_, err := svc.ListProducts(context.Background(), CatalogFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.NotNil(t, products.lastFilt.MinPrice)
	require.NotNil(t, products.lastFilt.MaxPrice)
	assert.Equal(t, 10.0, *products.lastFilt.MinPrice)
	assert.Equal(t, 50.0, *products.lastFilt.MaxPrice)
}

func TestListProductsServedFromCache(t *testing.T) {
	products := &fakeProductRepo{listed: sampleProducts()}
	svc := newTestCatalogService(t, products, &fakeCategoryRepo{}, &fakeReviewRepo{})
	ctx := context.Background()

	first, err := svc.ListProducts(ctx, CatalogFilter{})
	require.NoError(t, err)
	second, err := svc.ListProducts(ctx, CatalogFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, products.listCalls)
}

func TestListProductsDistinctFiltersMissCache(t *testing.T) {
	products := &fakeProductRepo{listed: sampleProducts()}
	svc := newTestCatalogService(t, products, &fakeCategoryRepo{}, &fakeReviewRepo{})
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, CatalogFilter{})
	require.NoError(t, err)

	minPrice := 10.0
	_, err = svc.ListProducts(ctx, CatalogFilter{MinPrice: &minPrice})
	require.NoError(t, err)

	assert.Equal(t, 2, products.listCalls)
}

func TestListProductReviews(t *testing.T) {
	products := &fakeProductRepo{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Keyboard"},
	}}
	reviews := &fakeReviewRepo{reviews: map[int64][]domain.Review{
		1: {{ID: 100, Rating: 5, Comment: []string{"great"}, ProductID: 1}},
	}}
	svc := newTestCatalogService(t, products, &fakeCategoryRepo{}, reviews)

	result, err := svc.ListProductReviews(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = svc.ListProductReviews(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}
