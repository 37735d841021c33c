package request

import (
	"time"

	"vehicle-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

const DateLayout = time.DateOnly

type CreateBookingRequest struct {
	VehicleID     uuid.UUID `json:"vehicleId" binding:"required"`
	StartDate     string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string    `json:"endDate" binding:"required,datetime=2006-01-02"`
	PaymentMethod string    `json:"paymentMethod" binding:"omitempty,max=50"`
	Notes         string    `json:"notes" binding:"max=500"`
}

// ToParams relies on binding having checked the date layout.
func (r *CreateBookingRequest) ToParams(customerID uuid.UUID) (commands.CreateBookingParams, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	return commands.CreateBookingParams{
		VehicleID:     r.VehicleID,
		CustomerID:    customerID,
		StartDate:     start,
		EndDate:       end,
		PaymentMethod: r.PaymentMethod,
		Note:          r.Notes,
	}, nil
}

type UpdateStatusQuery struct {
	Status string `form:"status" binding:"required,booking_status"`
}

// ListBookingsQuery filters are exclusive; the first one present wins in the
// order status, vehicleId, from/to.
type ListBookingsQuery struct {
	Status    string `form:"status" binding:"omitempty,booking_status"`
	VehicleID string `form:"vehicleId" binding:"omitempty,uuid"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

func (q *ListBookingsQuery) HasDateRange() bool {
	return q.From != "" || q.To != ""
}

// DateRange requires both ends.
func (q *ListBookingsQuery) DateRange() (time.Time, time.Time, bool) {
	if q.From == "" || q.To == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse(DateLayout, q.From)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(DateLayout, q.To)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
