package commands

//go:generate mockgen -destination=../../../tests/mock/commands/booking.go -package=commandsmock vehicle-rental/internal/usecase/commands BookingCommands

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/customer"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStartDateInPast     = errs.Mark(errs.New("start date cannot be in the past"), errs.ErrInvalidRequest)
	ErrEndBeforeStart      = errs.Mark(errs.New("end date must not be before start date"), errs.ErrInvalidRequest)
	ErrNoteTooLong         = errs.Mark(errs.New("notes must be at most 500 characters"), errs.ErrInvalidRequest)
	ErrInvalidStatus       = errs.Mark(errs.New("invalid booking status"), errs.ErrInvalidRequest)
	ErrVehicleNotFound     = errs.Mark(errs.New("vehicle not found"), errs.ErrNotFound)
	ErrCustomerNotFound    = errs.Mark(errs.New("customer not found"), errs.ErrNotFound)
	ErrBookingNotFound     = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrVehicleNotAvailable = errs.Mark(errs.New("vehicle not available"), errs.ErrConflict)
)

type CreateBookingParams struct {
	VehicleID     uuid.UUID
	CustomerID    uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	PaymentMethod string
	Note          string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, factory: factory, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	period, err := booking.NewRentalPeriod(params.StartDate, params.EndDate, clock.Today(uc.clock))
	if err != nil {
		return nil, mapDomainErr(err)
	}
	note, err := booking.NewNote(params.Note)
	if err != nil {
		return nil, mapDomainErr(err)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := uc.loadVehicle(ctx, tx, params.VehicleID)
		if err != nil {
			return err
		}
		if _, err := uc.loadCustomer(ctx, tx, params.CustomerID); err != nil {
			return err
		}

		b, err := uc.factory.CreateBooking(v, params.CustomerID, period, params.PaymentMethod, note)
		if err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		v.Lock()
		if err := tx.Vehicles().Save(ctx, v); err != nil {
			return err
		}

		if err := enqueueEvent(ctx, tx, shared.TopicBookingEvents, b.ID(), newBookingEvent(EventBookingCreated, b, uc.clock.Now())); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", created.ID(),
		"vehicle_id", created.VehicleID(),
		"customer_id", created.CustomerID(),
		"total_cost", created.TotalCost().StringFixed(2))
	return created, nil
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *booking.Booking
	var prev booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		prev, err = b.ChangeStatus(status)
		if err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return err
		}

		if status.ReleasesVehicle() {
			if err := uc.releaseVehicle(ctx, tx, b.VehicleID()); err != nil {
				return err
			}
		}

		event := newBookingEvent(EventBookingStatusChanged, b, uc.clock.Now())
		event.PreviousStatus = prev.String()
		if err := enqueueEvent(ctx, tx, shared.TopicBookingEvents, b.ID(), event); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking status changed",
		"booking_id", updated.ID(),
		"from", prev,
		"to", updated.Status())
	return updated, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return uc.UpdateStatus(ctx, id, booking.StatusCancelled)
}

// releaseVehicle frees the booked vehicle. A vehicle removed from the catalog
// since the booking was made has nothing left to release.
func (uc *bookingUseCaseImpl) releaseVehicle(ctx context.Context, tx shared.Tx, vehicleID uuid.UUID) error {
	v, err := tx.Vehicles().FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("booked vehicle no longer exists", "vehicle_id", vehicleID)
			return nil
		}
		return err
	}
	v.Release()
	return tx.Vehicles().Save(ctx, v)
}

func (uc *bookingUseCaseImpl) loadVehicle(ctx context.Context, tx shared.Tx, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, err := tx.Vehicles().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

func (uc *bookingUseCaseImpl) loadCustomer(ctx context.Context, tx shared.Tx, id uuid.UUID) (*customer.Customer, error) {
	c, err := tx.Customers().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func findBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// mapDomainErr translates domain sentinels into categorized use case errors.
func mapDomainErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrStartDateInPast):
		return ErrStartDateInPast
	case errs.Is(err, booking.ErrEndBeforeStart):
		return ErrEndBeforeStart
	case errs.Is(err, booking.ErrNoteTooLong):
		return ErrNoteTooLong
	case errs.Is(err, booking.ErrInvalidStatus):
		return ErrInvalidStatus
	case errs.Is(err, booking.ErrVehicleNotAvailable):
		return ErrVehicleNotAvailable
	case errs.Is(err, booking.ErrNotPayable):
		return ErrBookingNotPayable
	default:
		return errs.Mark(err, errs.ErrInvalidRequest)
	}
}
