package payment

import (
	"context"
	"fmt"
)

const LabelCash = "CASH"

type CashStrategy struct{}

func NewCashStrategy() *CashStrategy {
	return &CashStrategy{}
}

func (CashStrategy) MethodLabel() string { return LabelCash }

func (CashStrategy) Validate(req Request) bool {
	return req.Amount.IsPositive()
}

func (s CashStrategy) Settle(_ context.Context, req Request) (string, error) {
	if !s.Validate(req) {
		return "", ErrInvalidPaymentDetails
	}
	return fmt.Sprintf("Cash payment of %s received successfully. Please collect receipt at counter.",
		formatAmount(req.Amount)), nil
}
