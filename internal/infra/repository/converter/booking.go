package converter

import (
	"vehicle-rental/internal/domain/booking"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		VehicleID:     b.VehicleID(),
		CustomerID:    b.CustomerID(),
		StartDate:     pgconv.DateToPgtype(b.Period().Start()),
		EndDate:       pgconv.DateToPgtype(b.Period().End()),
		TotalCost:     pgconv.DecimalToNumeric(b.TotalCost()),
		Status:        b.Status().String(),
		PaymentMethod: pgconv.OptionalStringToPgtype(b.PaymentMethod()),
		Notes:         pgconv.OptionalStringToPgtype(b.Note().String()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateStateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		PaymentMethod: pgconv.OptionalStringToPgtype(b.PaymentMethod()),
	}
}

func BookingToDomain(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	cost, err := pgconv.DecimalFromNumeric(row.TotalCost)
	if err != nil {
		return nil, errs.Wrap(err, "total_cost")
	}
	note, err := booking.NewNote(pgconv.StringFromPgtype(row.Notes))
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		row.ID,
		row.VehicleID,
		row.CustomerID,
		booking.ReconstructRentalPeriod(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate)),
		cost,
		status,
		pgconv.StringFromPgtype(row.PaymentMethod),
		note,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
