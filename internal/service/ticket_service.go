package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/queue-ticket-api/internal/domain"
	"github.com/spec-kit/queue-ticket-api/internal/events"
	"github.com/spec-kit/queue-ticket-api/internal/repository"
	apperrors "github.com/spec-kit/queue-ticket-api/pkg/util"
)

// TicketInput carries optional ticket attributes. Creation accepts any
// subset; update overwrites only the supplied fields (last writer wins).
type TicketInput struct {
	NoTicket *string
	NoMeja   *string
	Status   *string
	DateTime *string
}

// TicketService coordinates queue ticket CRUD.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService builds the service.
func NewTicketService(ticketRepo repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: ticketRepo, dispatcher: dispatcher}
}

// Create persists whatever attributes were supplied.
func (s *TicketService) Create(ctx context.Context, input TicketInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{}
	applyInput(ticket, input)

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketCreated, ticket)
	return ticket, nil
}

// Get returns the ticket or a not-found error.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	return ticket, nil
}

// Update loads the ticket, merges the supplied fields and persists the
// result.
func (s *TicketService) Update(ctx context.Context, id string, input TicketInput) (*domain.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(ticket, input)
	if err := s.tickets.Update(ctx, ticket); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}

	s.publish(ctx, events.EventTicketUpdated, ticket)
	return ticket, nil
}

// Delete removes the ticket and returns its last known state.
func (s *TicketService) Delete(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.tickets.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}

	s.publish(ctx, events.EventTicketDeleted, ticket)
	return ticket, nil
}

// List returns every ticket in storage order.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

func applyInput(ticket *domain.Ticket, input TicketInput) {
	if input.NoTicket != nil {
		ticket.NoTicket = *input.NoTicket
	}
	if input.NoMeja != nil {
		ticket.NoMeja = *input.NoMeja
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.DateTime != nil {
		ticket.DateTime = *input.DateTime
	}
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, ticket *domain.Ticket) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: ticket.ID,
		Timestamp: time.Now(),
		Payload: events.TicketChangedPayload{
			NoTicket: ticket.NoTicket,
			NoMeja:   ticket.NoMeja,
			Status:   ticket.Status,
		},
	})
}
