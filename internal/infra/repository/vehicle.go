package repository

import (
	"context"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/repository/converter"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type VehicleWriteQueries interface {
	GetVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	UpdateVehicleAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVehicleAvailabilityParams) (int64, error)
}

type VehicleRepository struct {
	queries VehicleWriteQueries
	db      sqlc.DBTX
}

func NewVehicleRepository(queries VehicleWriteQueries, db sqlc.DBTX) *VehicleRepository {
	return &VehicleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.queries.GetVehicleByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get vehicle", err)
	}

	v, err := converter.VehicleToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert vehicle", err)
	}
	return v, nil
}

// Save writes the availability flag only; catalog fields are owned elsewhere.
func (r *VehicleRepository) Save(ctx context.Context, v *vehicle.Vehicle) error {
	affected, err := r.queries.UpdateVehicleAvailability(ctx, r.db, sqlc.UpdateVehicleAvailabilityParams{
		ID:           v.ID(),
		Availability: v.IsAvailable(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle availability", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
