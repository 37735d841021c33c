package request

import (
	"vehicle-rental/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessPaymentRequest accepts the amount as a JSON number or string.
type ProcessPaymentRequest struct {
	BookingID      uuid.UUID        `json:"bookingId" binding:"required"`
	Amount         *decimal.Decimal `json:"amount" binding:"required,decimal_positive"`
	PaymentMethod  string           `json:"paymentMethod" binding:"required,max=50"`
	CardNumber     string           `json:"cardNumber"`
	CardHolderName string           `json:"cardHolderName"`
	ExpiryDate     string           `json:"expiryDate"`
	CVV            string           `json:"cvv"`
}

// ToDomain must only be called after binding succeeded.
func (r *ProcessPaymentRequest) ToDomain() payment.Request {
	return payment.Request{
		BookingID: r.BookingID,
		Amount:    *r.Amount,
		Method:    r.PaymentMethod,
		Card: payment.CardDetails{
			Number:     r.CardNumber,
			HolderName: r.CardHolderName,
			Expiry:     r.ExpiryDate,
			CVV:        r.CVV,
		},
	}
}
