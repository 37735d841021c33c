package booking

import (
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock          clock.Clock
	CostCalculator CostCalculator
}

func NewFactory(clock clock.Clock, costCalculator CostCalculator) *Factory {
	return &Factory{
		Clock:          clock,
		CostCalculator: costCalculator,
	}
}

// CreateBooking builds a PENDING booking for an available vehicle. The caller
// is responsible for locking the vehicle in the same unit of work.
func (f *Factory) CreateBooking(
	v *vehicle.Vehicle,
	customerID uuid.UUID,
	period RentalPeriod,
	paymentMethod string,
	note Note,
) (*Booking, error) {
	if !v.IsAvailable() {
		return nil, ErrVehicleNotAvailable
	}

	cost := f.CostCalculator.Calculate(v.DailyRate(), period)
	if cost.IsNegative() {
		return nil, ErrNegativeCost
	}

	return &Booking{
		id:            uuid.New(),
		vehicleID:     v.ID(),
		customerID:    customerID,
		period:        period,
		totalCost:     cost,
		status:        StatusPending,
		paymentMethod: paymentMethod,
		note:          note,
		createdAt:     f.Clock.Now(),
	}, nil
}
