package queries

//go:generate mockgen -destination=../../../tests/mock/queries/booking.go -package=queriesmock vehicle-rental/internal/usecase/queries BookingQueries

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBookingNotFound    = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrInvalidDateRange   = errs.Mark(errs.New("from date must not be after to date"), errs.ErrInvalidRequest)
	ErrReceiptUnavailable = errs.Mark(errs.New("receipt is only available for confirmed or completed bookings"), errs.ErrConflict)
)

// BookingView is the booking joined with the vehicle and customer it references.
type BookingView struct {
	ID            uuid.UUID       `json:"id"`
	VehicleID     uuid.UUID       `json:"vehicle_id"`
	VehicleBrand  string          `json:"vehicle_brand"`
	VehicleModel  string          `json:"vehicle_model"`
	VehicleType   string          `json:"vehicle_type"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (v *BookingView) VehicleName() string {
	return v.VehicleBrand + " " + v.VehicleModel
}

type Receipt struct {
	Filename string
	Content  []byte
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	ListByStatus(ctx context.Context, status booking.Status) ([]*BookingView, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*BookingView, error)
	// ListByStartDateRange matches bookings starting between from and to, both inclusive.
	ListByStartDateRange(ctx context.Context, from, to time.Time) ([]*BookingView, error)
	GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
	FindByStatus(ctx context.Context, status string) ([]*BookingView, error)
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*BookingView, error)
	FindByStartDateRange(ctx context.Context, from, to time.Time) ([]*BookingView, error)
}

type ReceiptRenderer interface {
	Render(view *BookingView, issuedAt time.Time) ([]byte, error)
}

type bookingQueriesImpl struct {
	repo     BookingViewRepo
	renderer ReceiptRenderer
	clock    clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, renderer ReceiptRenderer, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, renderer: renderer, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.repo.FindAll(ctx)
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}

func (q *bookingQueriesImpl) ListByStatus(ctx context.Context, status booking.Status) ([]*BookingView, error) {
	if !status.IsValid() {
		return nil, errs.Mark(errs.Wrap(booking.ErrInvalidStatus, string(status)), errs.ErrInvalidRequest)
	}
	return q.repo.FindByStatus(ctx, status.String())
}

func (q *bookingQueriesImpl) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByVehicleID(ctx, vehicleID)
}

func (q *bookingQueriesImpl) ListByStartDateRange(ctx context.Context, from, to time.Time) ([]*BookingView, error) {
	from, to = clock.DateOf(from), clock.DateOf(to)
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	return q.repo.FindByStartDateRange(ctx, from, to)
}

func (q *bookingQueriesImpl) GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch booking.Status(view.Status) {
	case booking.StatusConfirmed, booking.StatusCompleted:
	default:
		return nil, ErrReceiptUnavailable
	}

	content, err := q.renderer.Render(view, q.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to render receipt")
	}
	return &Receipt{
		Filename: fmt.Sprintf("receipt-%s.pdf", view.ID),
		Content:  content,
	}, nil
}
