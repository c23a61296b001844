package service

import (
	"context"
	"testing"

	"github.com/spec-kit/queue-ticket-api/internal/repository"
	apperrors "github.com/spec-kit/queue-ticket-api/pkg/util"
)

func strPtr(s string) *string { return &s }

func newTicketService() *TicketService {
	return NewTicketService(repository.NewMemoryTicketRepository(), nil)
}

func TestTicketCreateAndGet(t *testing.T) {
	svc := newTicketService()
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketInput{
		NoTicket: strPtr("A1"),
		NoMeja:   strPtr("5"),
		Status:   strPtr("waiting"),
		DateTime: strPtr("2024-01-01T10:00:00"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.NoTicket != "A1" || got.NoMeja != "5" || got.Status != "waiting" || got.DateTime != "2024-01-01T10:00:00" {
		t.Fatalf("unexpected ticket: %+v", got)
	}
}

func TestTicketCreateAcceptsAnySubset(t *testing.T) {
	svc := newTicketService()
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketInput{Status: strPtr("waiting")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.NoTicket != "" || created.NoMeja != "" || created.DateTime != "" {
		t.Fatalf("unsupplied fields must stay empty: %+v", created)
	}
	if created.Status != "waiting" {
		t.Fatalf("expected status waiting, got %q", created.Status)
	}
}

func TestTicketUpdateMergesSuppliedFields(t *testing.T) {
	svc := newTicketService()
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketInput{
		NoTicket: strPtr("A1"),
		NoMeja:   strPtr("5"),
		Status:   strPtr("waiting"),
		DateTime: strPtr("2024-01-01T10:00:00"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, TicketInput{Status: strPtr("done")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != "done" {
		t.Fatalf("expected status done, got %q", updated.Status)
	}
	if updated.NoTicket != "A1" || updated.NoMeja != "5" || updated.DateTime != "2024-01-01T10:00:00" {
		t.Fatalf("other fields must be unchanged: %+v", updated)
	}
}

func TestTicketUpdateMissing(t *testing.T) {
	svc := newTicketService()

	_, err := svc.Update(context.Background(), "does-not-exist", TicketInput{Status: strPtr("done")})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestTicketDeleteReturnsLastState(t *testing.T) {
	svc := newTicketService()
	ctx := context.Background()

	created, err := svc.Create(ctx, TicketInput{NoTicket: strPtr("A1")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.NoTicket != "A1" {
		t.Fatalf("expected last known state, got %+v", deleted)
	}

	if _, err := svc.Get(ctx, created.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if _, err := svc.Delete(ctx, created.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("double delete must be not-found, got %v", err)
	}
}

func TestTicketListInsertionOrder(t *testing.T) {
	svc := newTicketService()
	ctx := context.Background()

	for _, no := range []string{"A1", "A2", "A3"} {
		if _, err := svc.Create(ctx, TicketInput{NoTicket: strPtr(no)}); err != nil {
			t.Fatalf("Create %s: %v", no, err)
		}
	}

	tickets, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(tickets))
	}
	for i, want := range []string{"A1", "A2", "A3"} {
		if tickets[i].NoTicket != want {
			t.Fatalf("position %d: got %q, want %q", i, tickets[i].NoTicket, want)
		}
	}
}
