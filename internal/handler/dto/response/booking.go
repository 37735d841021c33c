package response

import (
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Dates are rendered as YYYY-MM-DD and money as a two-decimal string.
type BookingResponse struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicleId"`
	VehicleBrand  string    `json:"vehicleBrand,omitempty"`
	VehicleModel  string    `json:"vehicleModel,omitempty"`
	VehicleType   string    `json:"vehicleType,omitempty"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalCost     string    `json:"totalCost"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

var viewConverters = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(time.DateOnly), nil
			},
		},
	},
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, viewConverters); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copier.CopyWithOption(&res, &views, viewConverters); err != nil {
		return nil, err
	}
	return res, nil
}

// FromBooking renders a freshly written aggregate, which carries no vehicle
// or customer names.
func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID().String(),
		VehicleID:     b.VehicleID().String(),
		CustomerID:    b.CustomerID().String(),
		StartDate:     b.Period().Start().Format(time.DateOnly),
		EndDate:       b.Period().End().Format(time.DateOnly),
		TotalCost:     b.TotalCost().StringFixed(2),
		Status:        b.Status().String(),
		PaymentMethod: b.PaymentMethod(),
		Notes:         b.Note().String(),
		CreatedAt:     b.CreatedAt(),
	}
}
