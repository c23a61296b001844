package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/queue-ticket-api/internal/api/dto"
	"github.com/spec-kit/queue-ticket-api/internal/service"
)

// UsersHandler exposes the user resource. Only Index reads storage; the
// remaining operations are intentional no-ops kept for wire compatibility
// with the system this one replaces.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Index handles GET /v1/users.
func (h *UsersHandler) Index(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ResourceSuccess("Users List", users))
}

// Store handles POST /v1/users. Static stub; does not touch storage.
func (h *UsersHandler) Store(c *fiber.Ctx) error {
	return c.JSON(dto.ResourceEnvelope{Success: true, Message: "Users has been registered"})
}

// Show handles GET /v1/users/:id. Static stub; does not touch storage.
func (h *UsersHandler) Show(c *fiber.Ctx) error {
	return c.JSON(dto.ResourceEnvelope{Success: true, Message: "Users Show"})
}

// Update handles PUT /v1/users/:id. Static stub; does not touch storage.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	return c.JSON(dto.ResourceEnvelope{Success: true, Message: "Users Update"})
}

// Destroy handles DELETE /v1/users/:id. Static stub; does not touch storage.
func (h *UsersHandler) Destroy(c *fiber.Ctx) error {
	return c.JSON(dto.ResourceEnvelope{Success: true, Message: "Users Destroy"})
}
