//go:build unit

package repository

import (
	"context"
	"math/big"
	"testing"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVehicleWriteQueries struct {
	mock.Mock
}

func (m *MockVehicleWriteQueries) GetVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Vehicles), args.Error(1)
}

func (m *MockVehicleWriteQueries) UpdateVehicleAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVehicleAvailabilityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func vanRow(id uuid.UUID) sqlc.Vehicles {
	return sqlc.Vehicles{
		ID:                 id,
		VehicleType:        "VAN",
		Brand:              "Ford",
		Model:              "Transit",
		RentalPricePerDay:  pgtype.Numeric{Int: big.NewInt(8999), Exp: -2, Valid: true},
		Availability:       true,
		RegistrationNumber: "VAN-001",
		YearOfManufacture:  2022,
		Details:            []byte(`{"cargo_capacity": 12.5, "number_of_seats": 3, "has_sliding_door": true, "van_type": "panel"}`),
	}
}

func TestVehicleRepository_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("success with variant details", func(t *testing.T) {
		mockQueries := new(MockVehicleWriteQueries)
		mockQueries.On("GetVehicleByID", mock.Anything, mock.Anything, id).Return(vanRow(id), nil)

		v, err := NewVehicleRepository(mockQueries, nil).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, vehicle.KindVan, v.Kind())
		assert.Equal(t, "89.99", v.DailyRate().StringFixed(2))
		assert.True(t, v.IsAvailable())
		assert.Equal(t, vehicle.VanDetails{CargoCapacity: 12.5, NumberOfSeats: 3, HasSlidingDoor: true, VanType: "panel"}, v.Details())
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockVehicleWriteQueries)
		mockQueries.On("GetVehicleByID", mock.Anything, mock.Anything, id).Return(sqlc.Vehicles{}, pgx.ErrNoRows)

		v, err := NewVehicleRepository(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, v)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("malformed details", func(t *testing.T) {
		row := vanRow(id)
		row.Details = []byte(`{"number_of_seats": "three"}`)
		mockQueries := new(MockVehicleWriteQueries)
		mockQueries.On("GetVehicleByID", mock.Anything, mock.Anything, id).Return(row, nil)

		v, err := NewVehicleRepository(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, v)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestVehicleRepository_Save(t *testing.T) {
	id := uuid.New()
	v, err := vehicle.ReconstructVehicle(id, vehicle.KindCar, "Toyota", "Corolla", decimal.New(5000, -2), true, "CAR-1", 2021, "", nil)
	require.NoError(t, err)
	v.Lock()

	t.Run("writes availability", func(t *testing.T) {
		mockQueries := new(MockVehicleWriteQueries)
		mockQueries.On("UpdateVehicleAvailability", mock.Anything, mock.Anything,
			sqlc.UpdateVehicleAvailabilityParams{ID: id, Availability: false}).Return(int64(1), nil)

		assert.NoError(t, NewVehicleRepository(mockQueries, nil).Save(context.Background(), v))
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockVehicleWriteQueries)
		mockQueries.On("UpdateVehicleAvailability", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		err := NewVehicleRepository(mockQueries, nil).Save(context.Background(), v)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
