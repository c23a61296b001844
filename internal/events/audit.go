package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLog subscribes a logging handler for every event type, giving
// operators a trail of registrations and ticket mutations.
func RegisterAuditLog(dispatcher Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, event Event) error {
		logger.Info("domain event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("subject_id", event.SubjectID),
			zap.Time("timestamp", event.Timestamp),
		)
		return nil
	}

	for _, eventType := range []EventType{
		EventUserRegistered,
		EventTicketCreated,
		EventTicketUpdated,
		EventTicketDeleted,
	} {
		dispatcher.Subscribe(eventType, handler)
	}
}
