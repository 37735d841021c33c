// source: bookings.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (id, vehicle_id, customer_id, start_date, end_date, total_cost,
                      status, payment_method, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateBookingParams struct {
	ID            uuid.UUID          `json:"id"`
	VehicleID     uuid.UUID          `json:"vehicle_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	StartDate     pgtype.Date        `json:"start_date"`
	EndDate       pgtype.Date        `json:"end_date"`
	TotalCost     pgtype.Numeric     `json:"total_cost"`
	Status        string             `json:"status"`
	PaymentMethod pgtype.Text        `json:"payment_method"`
	Notes         pgtype.Text        `json:"notes"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.VehicleID,
		arg.CustomerID,
		arg.StartDate,
		arg.EndDate,
		arg.TotalCost,
		arg.Status,
		arg.PaymentMethod,
		arg.Notes,
		arg.CreatedAt,
	)
	return err
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT id, vehicle_id, customer_id, start_date, end_date, total_cost,
       status, payment_method, notes, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.VehicleID,
		&i.CustomerID,
		&i.StartDate,
		&i.EndDate,
		&i.TotalCost,
		&i.Status,
		&i.PaymentMethod,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateBookingState = `-- name: UpdateBookingState :execrows
UPDATE bookings
SET status         = $2,
    payment_method = $3,
    updated_at     = now()
WHERE id = $1
`

type UpdateBookingStateParams struct {
	ID            uuid.UUID   `json:"id"`
	Status        string      `json:"status"`
	PaymentMethod pgtype.Text `json:"payment_method"`
}

func (q *Queries) UpdateBookingState(ctx context.Context, db DBTX, arg UpdateBookingStateParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingState, arg.ID, arg.Status, arg.PaymentMethod)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const bookingViewColumns = `id, vehicle_id, vehicle_brand, vehicle_model, vehicle_type, customer_id, customer_name, customer_email, start_date, end_date, total_cost, status, payment_method, notes, created_at, updated_at`

const getBookingViewByID = `-- name: GetBookingViewByID :one
SELECT ` + bookingViewColumns + ` FROM booking_views
WHERE id = $1
`

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViews, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var i BookingViews
	err := scanBookingView(row, &i)
	return i, err
}

const listBookingViews = `-- name: ListBookingViews :many
SELECT ` + bookingViewColumns + ` FROM booking_views
ORDER BY created_at DESC, id
`

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX) ([]BookingViews, error) {
	rows, err := db.Query(ctx, listBookingViews)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const listBookingViewsByCustomer = `-- name: ListBookingViewsByCustomer :many
SELECT ` + bookingViewColumns + ` FROM booking_views
WHERE customer_id = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListBookingViewsByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]BookingViews, error) {
	rows, err := db.Query(ctx, listBookingViewsByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const listBookingViewsByVehicle = `-- name: ListBookingViewsByVehicle :many
SELECT ` + bookingViewColumns + ` FROM booking_views
WHERE vehicle_id = $1
ORDER BY start_date, id
`

func (q *Queries) ListBookingViewsByVehicle(ctx context.Context, db DBTX, vehicleID uuid.UUID) ([]BookingViews, error) {
	rows, err := db.Query(ctx, listBookingViewsByVehicle, vehicleID)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const listBookingViewsByStatus = `-- name: ListBookingViewsByStatus :many
SELECT ` + bookingViewColumns + ` FROM booking_views
WHERE status = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListBookingViewsByStatus(ctx context.Context, db DBTX, status string) ([]BookingViews, error) {
	rows, err := db.Query(ctx, listBookingViewsByStatus, status)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

const listBookingViewsByStartDateRange = `-- name: ListBookingViewsByStartDateRange :many
SELECT ` + bookingViewColumns + ` FROM booking_views
WHERE start_date BETWEEN $1::date AND $2::date
ORDER BY start_date, id
`

type ListBookingViewsByStartDateRangeParams struct {
	FromDate pgtype.Date `json:"from_date"`
	ToDate   pgtype.Date `json:"to_date"`
}

func (q *Queries) ListBookingViewsByStartDateRange(ctx context.Context, db DBTX, arg ListBookingViewsByStartDateRangeParams) ([]BookingViews, error) {
	rows, err := db.Query(ctx, listBookingViewsByStartDateRange, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	return collectBookingViews(rows)
}

func scanBookingView(row pgx.Row, i *BookingViews) error {
	return row.Scan(
		&i.ID,
		&i.VehicleID,
		&i.VehicleBrand,
		&i.VehicleModel,
		&i.VehicleType,
		&i.CustomerID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.StartDate,
		&i.EndDate,
		&i.TotalCost,
		&i.Status,
		&i.PaymentMethod,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func collectBookingViews(rows pgx.Rows) ([]BookingViews, error) {
	defer rows.Close()
	items := []BookingViews{}
	for rows.Next() {
		var i BookingViews
		if err := scanBookingView(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
