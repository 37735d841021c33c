// source: vehicles.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getVehicleByID = `-- name: GetVehicleByID :one
SELECT id, vehicle_type, brand, model, rental_price_per_day, availability,
       registration_number, year_of_manufacture, description, details,
       created_at, updated_at
FROM vehicles
WHERE id = $1
`

func (q *Queries) GetVehicleByID(ctx context.Context, db DBTX, id uuid.UUID) (Vehicles, error) {
	row := db.QueryRow(ctx, getVehicleByID, id)
	var i Vehicles
	err := row.Scan(
		&i.ID,
		&i.VehicleType,
		&i.Brand,
		&i.Model,
		&i.RentalPricePerDay,
		&i.Availability,
		&i.RegistrationNumber,
		&i.YearOfManufacture,
		&i.Description,
		&i.Details,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateVehicleAvailability = `-- name: UpdateVehicleAvailability :execrows
UPDATE vehicles
SET availability = $2,
    updated_at   = now()
WHERE id = $1
`

type UpdateVehicleAvailabilityParams struct {
	ID           uuid.UUID `json:"id"`
	Availability bool      `json:"availability"`
}

func (q *Queries) UpdateVehicleAvailability(ctx context.Context, db DBTX, arg UpdateVehicleAvailabilityParams) (int64, error) {
	result, err := db.Exec(ctx, updateVehicleAvailability, arg.ID, arg.Availability)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
