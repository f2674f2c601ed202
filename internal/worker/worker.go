package worker

import (
	"github.com/spec-kit/storefront-service/internal/service"
)

// Start registers the event-driven background handlers: customer
// lifecycle notifications and the order history audit log.
func Start(notifications *service.NotificationService, audit *service.OrderAuditService) {
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if audit != nil {
		audit.RegisterHandlers()
	}
}
