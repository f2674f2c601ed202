package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// OrdersHandler exposes order retrieval endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// GetDetails handles GET /orders/:order_id.
func (h *OrdersHandler) GetDetails(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	details, err := h.orders.GetOrderDetails(c.Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderDetailsResponse(details))
}

// GetStatus handles GET /orders/:order_id/status.
func (h *OrdersHandler) GetStatus(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	status, err := h.orders.GetOrderStatus(c.Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OrderStatusResponse{Status: status})
}

// GetHistory handles GET /orders/:order_id/history.
func (h *OrdersHandler) GetHistory(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	entries, err := h.orders.ListOrderHistory(c.Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderHistoryResponses(entries))
}

func parseOrderID(c *fiber.Ctx) (int64, error) {
	orderID, err := strconv.ParseInt(c.Params("order_id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid order id", nil)
	}
	return orderID, nil
}
