package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CatalogHandler exposes public product browsing endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListProducts handles GET /products/ with optional category_name,
// min_price and max_price query filters.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var filter service.CatalogFilter

	if category := c.Query("category_name"); category != "" {
		filter.CategoryName = &category
	}
	minPrice, err := parsePriceQuery(c, "min_price")
	if err != nil {
		return err
	}
	filter.MinPrice = minPrice
	maxPrice, err := parsePriceQuery(c, "max_price")
	if err != nil {
		return err
	}
	filter.MaxPrice = maxPrice

	products, err := h.catalog.ListProducts(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponses(products))
}

// ListProductReviews handles GET /products/:product_id/reviews.
func (h *CatalogHandler) ListProductReviews(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}

	reviews, err := h.catalog.ListProductReviews(c.Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReviewResponses(reviews))
}

func parsePriceQuery(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid "+name, nil)
	}
	return &parsed, nil
}
