package booking

import (
	"github.com/shopspring/decimal"
)

type CostCalculator interface {
	Calculate(dailyRate decimal.Decimal, period RentalPeriod) decimal.Decimal
}

// DailyRateCostCalculator charges the daily rate for every billable day.
type DailyRateCostCalculator struct{}

func NewDailyRateCostCalculator() *DailyRateCostCalculator {
	return &DailyRateCostCalculator{}
}

func (DailyRateCostCalculator) Calculate(dailyRate decimal.Decimal, period RentalPeriod) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(period.BillableDays()))
}
