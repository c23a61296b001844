package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/queue-ticket-api/internal/api/dto"
	"github.com/spec-kit/queue-ticket-api/internal/service"
	apperrors "github.com/spec-kit/queue-ticket-api/pkg/util"
)

// TicketsHandler manages queue ticket CRUD endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Index handles GET /v1/ticket.
func (h *TicketsHandler) Index(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ResourceSuccess("Ticket List", tickets))
}

// Store handles POST /v1/ticket. Any subset of attributes is accepted.
func (h *TicketsHandler) Store(c *fiber.Ctx) error {
	var req dto.TicketPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ResourceFailure("Invalid payload"))
	}

	ticket, err := h.service.Create(c.Context(), ticketInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ResourceSuccess("Ticket created", ticket))
}

// Show handles GET /v1/ticket/:id.
func (h *TicketsHandler) Show(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(dto.ResourceSuccess("Ticket Show", ticket))
}

// Update handles PUT /v1/ticket/:id, merging only the supplied fields.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	var req dto.TicketPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ResourceFailure("Invalid payload"))
	}

	ticket, err := h.service.Update(c.Context(), c.Params("id"), ticketInput(req))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(dto.ResourceSuccess("Ticket updated", ticket))
}

// Destroy handles DELETE /v1/ticket/:id, returning the deleted entity's last
// known state.
func (h *TicketsHandler) Destroy(c *fiber.Ctx) error {
	ticket, err := h.service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(dto.ResourceSuccess("Ticket deleted", ticket))
}

func (h *TicketsHandler) renderError(c *fiber.Ctx, err error) error {
	if apperrors.IsNotFound(err) {
		return c.Status(http.StatusNotFound).JSON(dto.ResourceFailure("Ticket not found"))
	}
	return err
}

func ticketInput(req dto.TicketPayload) service.TicketInput {
	return service.TicketInput{
		NoTicket: req.NoTicket,
		NoMeja:   req.NoMeja,
		Status:   req.Status,
		DateTime: req.DateTime,
	}
}
