package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// ProductResponse is one catalog row.
type ProductResponse struct {
	ProductID  int64    `json:"product_id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	StockCount int      `json:"stock_count"`
	Rating     *float64 `json:"rating"`
}

// NewProductResponse shapes one product.
func NewProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  product.ID,
		Name:       product.Name,
		Price:      product.Price,
		StockCount: product.StockCount,
		Rating:     product.Rating,
	}
}

// NewProductResponses shapes a product listing.
func NewProductResponses(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, NewProductResponse(product))
	}
	return result
}

// ReviewResponse is one product review.
type ReviewResponse struct {
	ReviewID int64    `json:"review_id"`
	Rating   int      `json:"rating"`
	Comment  []string `json:"comment"`
}

// NewReviewResponses shapes a product's reviews.
func NewReviewResponses(reviews []domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, ReviewResponse{
			ReviewID: review.ID,
			Rating:   review.Rating,
			Comment:  review.Comment,
		})
	}
	return result
}
