//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-rental/internal/domain/booking"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	VehicleBrand  string
	VehicleModel  string
	VehicleType   string
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	StartDate     time.Time
	EndDate       time.Time
	TotalCost     decimal.Decimal
	Status        booking.Status
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	createdAt := time.Date(2030, 5, 20, 9, 30, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            uuid.New(),
		VehicleID:     uuid.New(),
		VehicleBrand:  "Toyota",
		VehicleModel:  "Corolla",
		VehicleType:   "CAR",
		CustomerID:    uuid.New(),
		CustomerName:  "Jane Driver",
		CustomerEmail: "jane@example.com",
		StartDate:     time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC),
		TotalCost:     decimal.RequireFromString("150.00"),
		Status:        booking.StatusPending,
		PaymentMethod: "CARD",
		Notes:         "child seat please",
		CreatedAt:     createdAt,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	note, err := booking.NewNote(b.Notes)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID,
		b.VehicleID,
		b.CustomerID,
		booking.ReconstructRentalPeriod(b.StartDate, b.EndDate),
		b.TotalCost,
		b.Status,
		b.PaymentMethod,
		note,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		VehicleBrand:  b.VehicleBrand,
		VehicleModel:  b.VehicleModel,
		VehicleType:   b.VehicleType,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		TotalCost:     b.TotalCost,
		Status:        b.Status.String(),
		PaymentMethod: b.PaymentMethod,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VehicleID:     b.VehicleID,
		StartDate:     b.StartDate.Format(time.DateOnly),
		EndDate:       b.EndDate.Format(time.DateOnly),
		PaymentMethod: b.PaymentMethod,
		Notes:         b.Notes,
	}
}

func (b *BookingBuilder) BuildCardPaymentDTO() reqdto.ProcessPaymentRequest {
	amount := b.TotalCost
	return reqdto.ProcessPaymentRequest{
		BookingID:      b.ID,
		Amount:         &amount,
		PaymentMethod:  "CARD",
		CardNumber:     "4111111111111111",
		CardHolderName: b.CustomerName,
		ExpiryDate:     "12/31",
		CVV:            "123",
	}
}

func (b *BookingBuilder) BuildCashPaymentDTO() reqdto.ProcessPaymentRequest {
	amount := b.TotalCost
	return reqdto.ProcessPaymentRequest{
		BookingID:     b.ID,
		Amount:        &amount,
		PaymentMethod: "CASH",
	}
}
