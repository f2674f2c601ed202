package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CatalogFilter describes the public product listing filters.
type CatalogFilter struct {
	CategoryName *string
	MinPrice     *float64
	MaxPrice     *float64
}

// CatalogService serves product listings through a Redis read-through
// cache keyed by the filter tuple.
type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	reviews    repository.ReviewRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// CatalogDependencies bundles collaborators for the catalog service.
type CatalogDependencies struct {
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	Cache        *redis.Client
	CacheTTL     time.Duration
	Logger       *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		products:   deps.ProductRepo,
		categories: deps.CategoryRepo,
		reviews:    deps.ReviewRepo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		logger:     deps.Logger,
	}
}

// ListProducts resolves the category name and applies the price range.
// An unknown category name simply drops the category filter, matching
// the lenient listing behavior of the public endpoint.
func (s *CatalogService) ListProducts(ctx context.Context, filter CatalogFilter) ([]domain.Product, error) {
	key := s.cacheKey(filter)
	if cached, ok := s.cacheGet(ctx, key); ok {
		return cached, nil
	}

	repoFilter := repository.ProductFilter{
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
	}
	if filter.CategoryName != nil {
		category, err := s.categories.GetByName(ctx, *filter.CategoryName)
		if err != nil && err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
		if category != nil {
			repoFilter.CategoryID = &category.ID
		}
	}

	products, err := s.products.ListWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.cacheSet(ctx, key, products)
	return products, nil
}

// ListProductReviews returns reviews for one product; unknown products 404.
func (s *CatalogService) ListProductReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("product not found")
		}
		return nil, apperrors.MapError(err)
	}

	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reviews, nil
}

func (s *CatalogService) cacheKey(filter CatalogFilter) string {
	category := ""
	if filter.CategoryName != nil {
		category = *filter.CategoryName
	}
	return fmt.Sprintf("catalog:products:%s:%s:%s",
		category, floatKey(filter.MinPrice), floatKey(filter.MaxPrice))
}

func (s *CatalogService) cacheGet(ctx context.Context, key string) ([]domain.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && s.logger != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, products []domain.Product) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}

func floatKey(val *float64) string {
	if val == nil {
		return "-"
	}
	return strconv.FormatFloat(*val, 'f', 2, 64)
}
