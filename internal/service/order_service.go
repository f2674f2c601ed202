package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// OrderDetails is the assembled view of an order and its products.
type OrderDetails struct {
	OrderID    int64            `json:"order_id"`
	TotalPrice float64          `json:"total_price"`
	Status     bool             `json:"status"`
	Products   []domain.Product `json:"products"`
}

// OrderService assembles order views and exposes the audit history log.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	history    repository.OrderHistoryRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles collaborators for the order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	HistoryRepo repository.OrderHistoryRepository
	Dispatcher  events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		products:   deps.ProductRepo,
		history:    deps.HistoryRepo,
		dispatcher: deps.Dispatcher,
	}
}

// GetOrderDetails loads the order, resolves each item's product row and
// publishes an order-viewed event carrying the assembled snapshot.
// Products that vanished from the catalog are skipped, not errors.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID int64) (*OrderDetails, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, apperrors.MapError(err)
	}

	items, err := s.orders.ListItems(ctx, orderID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if err == pgx.ErrNoRows {
				continue
			}
			return nil, apperrors.MapError(err)
		}
		products = append(products, *product)
	}

	details := &OrderDetails{
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		Products:   products,
	}

	s.publishViewed(ctx, order, details)
	return details, nil
}

// GetOrderStatus returns only the completed/pending flag.
func (s *OrderService) GetOrderStatus(ctx context.Context, orderID int64) (bool, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, apperrors.NewNotFound("order not found")
		}
		return false, apperrors.MapError(err)
	}
	return order.Status, nil
}

// ListOrderHistory returns the audit snapshots logged for an order.
func (s *OrderService) ListOrderHistory(ctx context.Context, orderID int64) ([]domain.OrderHistoryLog, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, apperrors.MapError(err)
	}

	entries, err := s.history.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

func (s *OrderService) publishViewed(ctx context.Context, order *domain.Order, details *OrderDetails) {
	if s.dispatcher == nil {
		return
	}
	snapshot, err := json.Marshal(details)
	if err != nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderViewed,
		Timestamp: time.Now(),
		Payload: events.OrderViewedPayload{
			CustomerID: order.CustomerID,
			OrderID:    order.ID,
			Snapshot:   snapshot,
		},
	})
}
