package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
	ErrNotPayable          = errors.New("booking is not in a payable state")
	ErrNegativeCost        = errors.New("total cost cannot be negative")
)

type Booking struct {
	id            uuid.UUID
	vehicleID     uuid.UUID
	customerID    uuid.UUID
	period        RentalPeriod
	totalCost     decimal.Decimal
	status        Status
	paymentMethod string
	note          Note
	createdAt     time.Time
}

func ReconstructBooking(
	id, vehicleID, customerID uuid.UUID,
	period RentalPeriod,
	totalCost decimal.Decimal,
	status Status,
	paymentMethod string,
	note Note,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		vehicleID:     vehicleID,
		customerID:    customerID,
		period:        period,
		totalCost:     totalCost,
		status:        status,
		paymentMethod: paymentMethod,
		note:          note,
		createdAt:     createdAt,
	}
}

// ChangeStatus applies any valid status; transitions are not restricted.
// It returns the previous status.
func (b *Booking) ChangeStatus(status Status) (Status, error) {
	if !status.IsValid() {
		return b.status, ErrInvalidStatus
	}
	prev := b.status
	b.status = status
	return prev, nil
}

// Settle confirms the booking and records the method the payment went through.
func (b *Booking) Settle(methodLabel string) error {
	if !b.status.IsPayable() {
		return ErrNotPayable
	}
	b.status = StatusConfirmed
	b.paymentMethod = methodLabel
	return nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) VehicleID() uuid.UUID       { return b.vehicleID }
func (b *Booking) CustomerID() uuid.UUID      { return b.customerID }
func (b *Booking) Period() RentalPeriod       { return b.period }
func (b *Booking) TotalCost() decimal.Decimal { return b.totalCost }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) PaymentMethod() string      { return b.paymentMethod }
func (b *Booking) Note() Note                 { return b.note }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
