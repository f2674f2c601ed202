package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// OrderAuditService appends order-viewed snapshots to the order history
// log.
type OrderAuditService struct {
	dispatcher events.Dispatcher
	history    repository.OrderHistoryRepository
	logger     *zap.Logger
}

// NewOrderAuditService creates the service.
func NewOrderAuditService(dispatcher events.Dispatcher, history repository.OrderHistoryRepository, logger *zap.Logger) *OrderAuditService {
	return &OrderAuditService{
		dispatcher: dispatcher,
		history:    history,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to order events.
func (a *OrderAuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventOrderViewed, a.handleOrderViewed)
}

func (a *OrderAuditService) handleOrderViewed(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderViewedPayload)
	if !ok {
		return errors.New("unexpected order_viewed payload")
	}

	entry := &domain.OrderHistoryLog{
		CustomerID:   payload.CustomerID,
		OrderID:      payload.OrderID,
		OrderDetails: payload.Snapshot,
	}
	if err := a.history.Create(ctx, entry); err != nil {
		a.logger.Warn("order history append failed",
			zap.Int64("order_id", payload.OrderID), zap.Error(err))
		return err
	}
	return nil
}
