package request

import (
	"vehicle-rental/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations adds the custom tags used by the request DTOs to gin's
// validator. It must run before the router serves requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		return err
	}
	return v.RegisterValidation("decimal_positive", validateDecimalPositive)
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	_, err := booking.ParseStatus(fl.Field().String())
	return err == nil
}

func validateDecimalPositive(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}
