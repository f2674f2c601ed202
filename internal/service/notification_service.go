package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/events"
)

// NotificationService handles emitting notifications for customer
// lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCustomerRegistered, n.handleCustomerRegistered)
	n.dispatcher.Subscribe(events.EventCustomerUpdated, n.handleCustomerUpdated)
	n.dispatcher.Subscribe(events.EventCustomerDeleted, n.handleCustomerDeleted)
}

func (n *NotificationService) handleCustomerRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("CustomerRegistered", zap.String("username", event.Username))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCustomerUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("CustomerUpdated", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCustomerDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("CustomerDeleted", zap.String("username", event.Username))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("username", event.Username),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("username", event.Username),
		zap.String("event_type", string(event.Type)))
}
