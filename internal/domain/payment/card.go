package payment

import (
	"context"
	"fmt"
)

const (
	LabelCard = "CARD"

	minCardNumberLength = 13
	cvvLength           = 3
	visibleDigits       = 4
)

type CardStrategy struct{}

func NewCardStrategy() *CardStrategy {
	return &CardStrategy{}
}

func (CardStrategy) MethodLabel() string { return LabelCard }

func (CardStrategy) Validate(req Request) bool {
	c := req.Card
	return len(c.Number) >= minCardNumberLength &&
		c.HolderName != "" &&
		c.Expiry != "" &&
		len(c.CVV) == cvvLength
}

func (s CardStrategy) Settle(_ context.Context, req Request) (string, error) {
	if !s.Validate(req) {
		return "", ErrInvalidPaymentDetails
	}
	return fmt.Sprintf("Payment of %s processed successfully via Card (%s)",
		formatAmount(req.Amount), MaskCardNumber(req.Card.Number)), nil
}

// MaskCardNumber keeps the last four characters behind a fixed mask.
func MaskCardNumber(number string) string {
	if len(number) < visibleDigits {
		return "****"
	}
	return "**** **** **** " + number[len(number)-visibleDigits:]
}
