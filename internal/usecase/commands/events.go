package commands

import (
	"context"
	"encoding/json"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventPaymentSettled       = "payment.settled"
)

// BookingEvent is the outbox payload for every booking-related event.
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	VehicleID      string    `json:"vehicle_id"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalCost      string    `json:"total_cost"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newBookingEvent(eventType string, b *booking.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     b.ID().String(),
		VehicleID:     b.VehicleID().String(),
		CustomerID:    b.CustomerID().String(),
		Status:        b.Status().String(),
		TotalCost:     b.TotalCost().StringFixed(2),
		PaymentMethod: b.PaymentMethod(),
		StartDate:     b.Period().Start().Format(time.DateOnly),
		EndDate:       b.Period().End().Format(time.DateOnly),
		OccurredAt:    at,
	}
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, aggregateID uuid.UUID, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}

	return tx.Notifications().CreateJob(ctx, shared.NotificationJob{
		Kind:        event.Type,
		Topic:       topic,
		AggregateID: aggregateID,
		Payload:     payload,
		RunAt:       event.OccurredAt,
	})
}
