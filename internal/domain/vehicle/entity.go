package vehicle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidKind       = errors.New("invalid vehicle kind")
	ErrDetailsMismatch   = errors.New("vehicle details do not match vehicle kind")
	ErrNegativeDailyRate = errors.New("daily rate cannot be negative")
)

type Vehicle struct {
	id                 uuid.UUID
	kind               Kind
	brand              string
	model              string
	dailyRate          decimal.Decimal
	available          bool
	registrationNumber string
	yearOfManufacture  int
	description        string
	details            Details
}

func ReconstructVehicle(
	id uuid.UUID,
	kind Kind,
	brand, model string,
	dailyRate decimal.Decimal,
	available bool,
	registrationNumber string,
	yearOfManufacture int,
	description string,
	details Details,
) (*Vehicle, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if details != nil && details.Kind() != kind {
		return nil, ErrDetailsMismatch
	}
	if dailyRate.IsNegative() {
		return nil, ErrNegativeDailyRate
	}
	return &Vehicle{
		id:                 id,
		kind:               kind,
		brand:              brand,
		model:              model,
		dailyRate:          dailyRate,
		available:          available,
		registrationNumber: registrationNumber,
		yearOfManufacture:  yearOfManufacture,
		description:        description,
		details:            details,
	}, nil
}

// Lock marks the vehicle as taken by a booking. Last writer wins.
func (v *Vehicle) Lock() {
	v.available = false
}

// Release makes the vehicle bookable again. Last writer wins.
func (v *Vehicle) Release() {
	v.available = true
}

// Summary is a one-line human description that depends on the variant.
func (v *Vehicle) Summary() string {
	base := fmt.Sprintf("%s %s (%s)", v.brand, v.model, v.kind)
	switch v.kind {
	case KindCar:
		if d, ok := v.details.(CarDetails); ok {
			return fmt.Sprintf("%s, %d seats, %s", base, d.NumberOfSeats, d.TransmissionType)
		}
	case KindBike:
		if d, ok := v.details.(BikeDetails); ok {
			return fmt.Sprintf("%s, %dcc %s", base, d.EngineCapacityCC, d.BikeType)
		}
	case KindVan:
		if d, ok := v.details.(VanDetails); ok {
			return fmt.Sprintf("%s, %.1fm3 cargo", base, d.CargoCapacity)
		}
	}
	return base
}

func (v *Vehicle) ID() uuid.UUID              { return v.id }
func (v *Vehicle) Kind() Kind                 { return v.kind }
func (v *Vehicle) Brand() string              { return v.brand }
func (v *Vehicle) Model() string              { return v.model }
func (v *Vehicle) DailyRate() decimal.Decimal { return v.dailyRate }
func (v *Vehicle) IsAvailable() bool          { return v.available }
func (v *Vehicle) RegistrationNumber() string { return v.registrationNumber }
func (v *Vehicle) YearOfManufacture() int     { return v.yearOfManufacture }
func (v *Vehicle) Description() string        { return v.description }
func (v *Vehicle) Details() Details           { return v.details }
