package shared

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/customer"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Outbox topics. The relay publishes each job to the Kafka topic of the same name.
const (
	TopicBookingEvents = "rental.booking-events"
	TopicPaymentEvents = "rental.payment-events"
)

type UnitOfWork interface {
	// Within runs fn in one transaction; any error rolls every write back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Vehicles() VehicleRepository
	Customers() CustomerRepository
	Notifications() NotificationRepository
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	// Save persists the mutable state of a booking: status and payment method.
	Save(ctx context.Context, b *booking.Booking) error
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	// Save persists the availability flag.
	Save(ctx context.Context, v *vehicle.Vehicle) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NotificationJob) error
}

type NotificationJob struct {
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	RunAt       time.Time
}
