//go:build unit

package vehicle_test

import (
	"testing"

	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCar(t *testing.T, available bool) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.ReconstructVehicle(
		uuid.New(), vehicle.KindCar, "Toyota", "Corolla",
		decimal.RequireFromString("50.00"), available,
		"KA-01-1234", 2022, "compact sedan",
		vehicle.CarDetails{NumberOfSeats: 5, FuelType: "PETROL", TransmissionType: "AUTOMATIC", HasAirConditioning: true},
	)
	require.NoError(t, err)
	return v
}

func TestVehicle_AvailabilityGate(t *testing.T) {
	t.Run("lock then release", func(t *testing.T) {
		v := newCar(t, true)

		v.Lock()
		assert.False(t, v.IsAvailable())

		v.Release()
		assert.True(t, v.IsAvailable())
	})

	t.Run("last writer wins", func(t *testing.T) {
		v := newCar(t, false)

		v.Lock()
		assert.False(t, v.IsAvailable())
		v.Release()
		v.Release()
		assert.True(t, v.IsAvailable())
	})
}

func TestReconstructVehicle(t *testing.T) {
	testCases := []struct {
		name    string
		kind    vehicle.Kind
		rate    string
		details vehicle.Details
		errIs   error
	}{
		{name: "bike with bike details OK", kind: vehicle.KindBike, rate: "15", details: vehicle.BikeDetails{EngineCapacityCC: 150, BikeType: "SCOOTER"}},
		{name: "van with van details OK", kind: vehicle.KindVan, rate: "80", details: vehicle.VanDetails{CargoCapacity: 6.5, NumberOfSeats: 3}},
		{name: "details omitted OK", kind: vehicle.KindCar, rate: "40"},
		{name: "zero rate OK", kind: vehicle.KindCar, rate: "0"},
		{name: "unknown kind NG", kind: vehicle.Kind("TRUCK"), rate: "10", errIs: vehicle.ErrInvalidKind},
		{name: "details of another kind NG", kind: vehicle.KindCar, rate: "10", details: vehicle.BikeDetails{}, errIs: vehicle.ErrDetailsMismatch},
		{name: "negative rate NG", kind: vehicle.KindCar, rate: "-1", errIs: vehicle.ErrNegativeDailyRate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vehicle.ReconstructVehicle(uuid.New(), tc.kind, "Brand", "Model",
				decimal.RequireFromString(tc.rate), true, "REG", 2020, "", tc.details)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
		})
	}
}

func TestVehicle_Summary(t *testing.T) {
	assert.Equal(t, "Toyota Corolla (CAR), 5 seats, AUTOMATIC", newCar(t, true).Summary())

	bike, err := vehicle.ReconstructVehicle(uuid.New(), vehicle.KindBike, "Honda", "PCX",
		decimal.NewFromInt(20), true, "B-1", 2021, "", vehicle.BikeDetails{EngineCapacityCC: 160, BikeType: "SCOOTER"})
	require.NoError(t, err)
	assert.Equal(t, "Honda PCX (BIKE), 160cc SCOOTER", bike.Summary())
}

func TestParseKind(t *testing.T) {
	k, err := vehicle.ParseKind(" van ")
	require.NoError(t, err)
	assert.Equal(t, vehicle.KindVan, k)

	_, err = vehicle.ParseKind("boat")
	assert.ErrorIs(t, err, vehicle.ErrInvalidKind)
}
