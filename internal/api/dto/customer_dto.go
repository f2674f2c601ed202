package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// CustomerCreateRequest payload for registration.
type CustomerCreateRequest struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Password     string   `json:"password"`
	Username     string   `json:"username"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// CustomerUpdateRequest payload for partial profile updates; nil fields
// are left untouched.
type CustomerUpdateRequest struct {
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	Password     *string   `json:"password"`
	PhoneNumbers *[]string `json:"phone_numbers"`
}

// LoginRequest accepts the form-encoded credential pair.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Message     string `json:"message"`
}

// UpdateResponse acknowledges a profile update and carries the reissued
// token.
type UpdateResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is a bare acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// FavoriteItemResponse is one wishlist entry.
type FavoriteItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// FavoriteListResponse is a customer's wishlist.
type FavoriteListResponse struct {
	FavoriteID int64                  `json:"favorite_id"`
	TotalPrice float64                `json:"total_price"`
	Items      []FavoriteItemResponse `json:"items"`
}

// NewFavoriteListResponse shapes the wishlist reply.
func NewFavoriteListResponse(list *domain.FavoriteList, items []domain.FavoriteListItem) FavoriteListResponse {
	resp := FavoriteListResponse{
		FavoriteID: list.ID,
		TotalPrice: list.TotalPrice,
		Items:      make([]FavoriteItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, FavoriteItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return resp
}
