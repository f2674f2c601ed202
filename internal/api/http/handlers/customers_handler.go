package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CustomersHandler exposes registration, profile mutation and customer
// data endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customerService}
}

// Register handles POST /customer/.
func (h *CustomersHandler) Register(c *fiber.Ctx) error {
	var req dto.CustomerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("first_name, last_name, username, password required", nil)
	}

	if _, err := h.customers.Register(c.Context(), service.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Password:     req.Password,
		PhoneNumbers: req.PhoneNumbers,
	}); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{
		Message: "customer created successfully!",
	})
}

// Update handles PUT /customer/update. A successful update reissues a
// token for the same subject.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	customer, ok := auth.CustomerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	var req dto.CustomerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.customers.Update(c.Context(), customer, service.UpdateInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Password:     req.Password,
		PhoneNumbers: req.PhoneNumbers,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.UpdateResponse{
		Message:     "customer properties updated successfully.",
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Delete handles DELETE /customer/delete. The current password must be
// re-confirmed; it is taken from the query string or the body.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	customer, ok := auth.CustomerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	password := c.Query("password")
	if password == "" {
		var req dto.LoginRequest
		if err := c.BodyParser(&req); err == nil {
			password = req.Password
		}
	}
	if password == "" {
		return apperrors.NewValidationError("password confirmation required", nil)
	}

	if err := h.customers.Delete(c.Context(), customer, password); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "customer deleted successfully."})
}

// Addresses handles GET /addresses/:user_id.
func (h *CustomersHandler) Addresses(c *fiber.Ctx) error {
	customerID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid customer id", nil)
	}

	addresses, err := h.customers.Addresses(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAddressResponses(addresses))
}

// Favorites handles GET /customer/favorites for the authenticated customer.
func (h *CustomersHandler) Favorites(c *fiber.Ctx) error {
	customer, ok := auth.CustomerFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	list, items, err := h.customers.Favorites(c.Context(), customer.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFavoriteListResponse(list, items))
}
