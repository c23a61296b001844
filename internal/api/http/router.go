package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/queue-ticket-api/internal/api/http/handlers"
	"github.com/spec-kit/queue-ticket-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Users     *handlers.UsersHandler
	Tickets   *handlers.TicketsHandler
	TokenGate *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	v1 := app.Group("/v1")

	v1.Get("/users", cfg.Users.Index)
	v1.Post("/users", cfg.Users.Store)
	v1.Get("/users/:id", cfg.Users.Show)
	v1.Put("/users/:id", cfg.Users.Update)
	v1.Delete("/users/:id", cfg.Users.Destroy)

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := authGroup.Group("", cfg.TokenGate.Handle)
	protected.Post("/logout", cfg.Auth.Logout)
	protected.Post("/refresh", cfg.Auth.Refresh)
	protected.Get("/me", cfg.Auth.Me)

	ticketGroup := v1.Group("/ticket")
	ticketGroup.Get("/", cfg.Tickets.Index)
	ticketGroup.Post("/", cfg.Tickets.Store)
	ticketGroup.Get("/:id", cfg.Tickets.Show)
	ticketGroup.Put("/:id", cfg.Tickets.Update)
	ticketGroup.Delete("/:id", cfg.Tickets.Destroy)
}
