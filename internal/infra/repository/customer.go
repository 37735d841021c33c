package repository

import (
	"context"

	"vehicle-rental/internal/domain/customer"
	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCustomerByIDRow, error)
}

type CustomerRepository struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerReadQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

// FindByID only matches users with the customer role.
func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}

	return customer.ReconstructCustomer(
		row.ID,
		row.Name,
		row.Email,
		pgconv.StringFromPgtype(row.DrivingLicenseNumber),
		pgconv.StringFromPgtype(row.Address),
	), nil
}
