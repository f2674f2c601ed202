package dto

import (
	"encoding/json"
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
)

// OrderDetailsResponse is an order with its resolved products.
type OrderDetailsResponse struct {
	OrderID    int64             `json:"order_id"`
	TotalPrice float64           `json:"total_price"`
	Status     bool              `json:"status"`
	Products   []ProductResponse `json:"products"`
}

// NewOrderDetailsResponse shapes assembled order details.
func NewOrderDetailsResponse(details *service.OrderDetails) OrderDetailsResponse {
	return OrderDetailsResponse{
		OrderID:    details.OrderID,
		TotalPrice: details.TotalPrice,
		Status:     details.Status,
		Products:   NewProductResponses(details.Products),
	}
}

// OrderStatusResponse carries only the completed/pending flag.
type OrderStatusResponse struct {
	Status bool `json:"status"`
}

// OrderHistoryEntryResponse is one audit snapshot.
type OrderHistoryEntryResponse struct {
	LogID        int64           `json:"log_id"`
	OrderID      int64           `json:"order_id"`
	OrderDetails json.RawMessage `json:"order_details"`
	LoggedAt     time.Time       `json:"logged_at"`
}

// NewOrderHistoryResponses shapes an order's audit trail.
func NewOrderHistoryResponses(entries []domain.OrderHistoryLog) []OrderHistoryEntryResponse {
	result := make([]OrderHistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, OrderHistoryEntryResponse{
			LogID:        entry.ID,
			OrderID:      entry.OrderID,
			OrderDetails: json.RawMessage(entry.OrderDetails),
			LoggedAt:     entry.LoggedAt,
		})
	}
	return result
}
