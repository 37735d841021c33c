package readstore

import (
	"context"
	"time"

	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"
	"vehicle-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViews, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.BookingViews, error)
	ListBookingViewsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.BookingViews, error)
	ListBookingViewsByVehicle(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) ([]sqlc.BookingViews, error)
	ListBookingViewsByStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.BookingViews, error)
	ListBookingViewsByStartDateRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByStartDateRangeParams) ([]sqlc.BookingViews, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by vehicle", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByStatus(ctx, r.db, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByStartDateRange(ctx context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByStartDateRange(ctx, r.db, sqlc.ListBookingViewsByStartDateRangeParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by start date", err)
	}
	return toBookingViews(rows)
}

func toBookingViews(rows []sqlc.BookingViews) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		view, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func toBookingView(row sqlc.BookingViews) (*queries.BookingView, error) {
	cost, err := pgconv.DecimalFromNumeric(row.TotalCost)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid total cost", err)
	}

	return &queries.BookingView{
		ID:            row.ID,
		VehicleID:     row.VehicleID,
		VehicleBrand:  row.VehicleBrand,
		VehicleModel:  row.VehicleModel,
		VehicleType:   row.VehicleType,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		TotalCost:     cost,
		Status:        row.Status,
		PaymentMethod: pgconv.StringFromPgtype(row.PaymentMethod),
		Notes:         pgconv.StringFromPgtype(row.Notes),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
