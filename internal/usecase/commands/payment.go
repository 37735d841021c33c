package commands

//go:generate mockgen -destination=../../../tests/mock/commands/payment.go -package=commandsmock vehicle-rental/internal/usecase/commands PaymentCommands

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/payment"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"
)

var (
	ErrBookingNotPayable     = errs.Mark(errs.New("booking not payable"), errs.ErrConflict)
	ErrNonPositiveAmount     = errs.Mark(errs.New("amount must be positive"), errs.ErrInvalidRequest)
	ErrAmountMismatch        = errs.Mark(errs.New("amount mismatch"), errs.ErrInvalidRequest)
	ErrUnknownPaymentMethod  = errs.Mark(errs.New("unknown payment method"), errs.ErrInvalidRequest)
	ErrInvalidPaymentDetails = errs.Mark(errs.New("invalid payment details"), errs.ErrInvalidRequest)
)

type PaymentCommands interface {
	// Settle returns the confirmation message produced by the payment method.
	Settle(ctx context.Context, req payment.Request) (string, error)
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	registry *payment.Registry
	clock    clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, registry *payment.Registry, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, registry: registry, clock: clk}
}

func (uc *paymentUseCaseImpl) Settle(ctx context.Context, req payment.Request) (string, error) {
	var message string
	var settled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBooking(ctx, tx, req.BookingID)
		if err != nil {
			return err
		}
		if !b.Status().IsPayable() {
			return ErrBookingNotPayable
		}
		if !req.Amount.IsPositive() {
			return ErrNonPositiveAmount
		}
		if !req.Amount.Equal(b.TotalCost()) {
			return ErrAmountMismatch
		}

		strategy, ok := uc.registry.Lookup(req.Method)
		if !ok {
			return ErrUnknownPaymentMethod
		}
		msg, err := strategy.Settle(ctx, req)
		if err != nil {
			if errs.Is(err, payment.ErrInvalidPaymentDetails) {
				return ErrInvalidPaymentDetails
			}
			return err
		}

		if err := b.Settle(req.Method); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Bookings().Save(ctx, b); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, shared.TopicPaymentEvents, b.ID(), newBookingEvent(EventPaymentSettled, b, uc.clock.Now())); err != nil {
			return err
		}

		message = msg
		settled = b
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.Info("payment settled",
		"booking_id", settled.ID(),
		"method", settled.PaymentMethod(),
		"amount", settled.TotalCost().StringFixed(2))
	return message, nil
}
