package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Catalog        *handlers.CatalogHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)

	customer := app.Group("/customer")
	customer.Post("/", cfg.Customers.Register)
	customer.Put("/update", cfg.AuthMiddleware.Handle, cfg.Customers.Update)
	customer.Delete("/delete", cfg.AuthMiddleware.Handle, cfg.Customers.Delete)
	customer.Get("/favorites", cfg.AuthMiddleware.Handle, cfg.Customers.Favorites)

	app.Get("/addresses/:user_id", cfg.Customers.Addresses)

	app.Get("/products/", cfg.Catalog.ListProducts)
	app.Get("/products/:product_id/reviews", cfg.Catalog.ListProductReviews)

	app.Get("/orders/:order_id", cfg.Orders.GetDetails)
	app.Get("/orders/:order_id/status", cfg.Orders.GetStatus)
	app.Get("/orders/:order_id/history", cfg.Orders.GetHistory)
}
