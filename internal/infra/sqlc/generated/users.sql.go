// source: users.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getCustomerByID = `-- name: GetCustomerByID :one
SELECT id, name, email, driving_license_number, address
FROM users
WHERE id = $1
  AND role = 'customer'
`

type GetCustomerByIDRow struct {
	ID                   uuid.UUID   `json:"id"`
	Name                 string      `json:"name"`
	Email                string      `json:"email"`
	DrivingLicenseNumber pgtype.Text `json:"driving_license_number"`
	Address              pgtype.Text `json:"address"`
}

func (q *Queries) GetCustomerByID(ctx context.Context, db DBTX, id uuid.UUID) (GetCustomerByIDRow, error) {
	row := db.QueryRow(ctx, getCustomerByID, id)
	var i GetCustomerByIDRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.DrivingLicenseNumber,
		&i.Address,
	)
	return i, err
}
