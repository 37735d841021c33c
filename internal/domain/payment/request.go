package payment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request is a one-shot settlement attempt; it is never stored.
type Request struct {
	BookingID uuid.UUID
	Amount    decimal.Decimal
	Method    string
	Card      CardDetails
}

type CardDetails struct {
	Number     string
	HolderName string
	Expiry     string
	CVV        string
}

func formatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
