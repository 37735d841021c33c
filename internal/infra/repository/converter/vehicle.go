package converter

import (
	"encoding/json"

	"vehicle-rental/internal/domain/vehicle"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/pkg/pgconv"
)

// vehicles.details is a JSONB column whose shape depends on vehicle_type.

type carDetailsJSON struct {
	NumberOfSeats      int    `json:"number_of_seats"`
	FuelType           string `json:"fuel_type"`
	TransmissionType   string `json:"transmission_type"`
	HasAirConditioning bool   `json:"has_air_conditioning"`
}

type bikeDetailsJSON struct {
	EngineCapacityCC int    `json:"engine_capacity_cc"`
	BikeType         string `json:"bike_type"`
	HasHelmet        bool   `json:"has_helmet"`
}

type vanDetailsJSON struct {
	CargoCapacity  float64 `json:"cargo_capacity"`
	NumberOfSeats  int     `json:"number_of_seats"`
	HasSlidingDoor bool    `json:"has_sliding_door"`
	VanType        string  `json:"van_type"`
}

func VehicleToDomain(row sqlc.Vehicles) (*vehicle.Vehicle, error) {
	kind, err := vehicle.ParseKind(row.VehicleType)
	if err != nil {
		return nil, err
	}
	rate, err := pgconv.DecimalFromNumeric(row.RentalPricePerDay)
	if err != nil {
		return nil, errs.Wrap(err, "rental_price_per_day")
	}
	details, err := DetailsFromJSON(kind, row.Details)
	if err != nil {
		return nil, err
	}

	return vehicle.ReconstructVehicle(
		row.ID,
		kind,
		row.Brand,
		row.Model,
		rate,
		row.Availability,
		row.RegistrationNumber,
		int(row.YearOfManufacture),
		pgconv.StringFromPgtype(row.Description),
		details,
	)
}

// DetailsFromJSON returns nil details for an empty payload.
func DetailsFromJSON(kind vehicle.Kind, raw []byte) (vehicle.Details, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch kind {
	case vehicle.KindCar:
		var d carDetailsJSON
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, errs.Wrap(err, "car details")
		}
		return vehicle.CarDetails(d), nil
	case vehicle.KindBike:
		var d bikeDetailsJSON
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, errs.Wrap(err, "bike details")
		}
		return vehicle.BikeDetails(d), nil
	case vehicle.KindVan:
		var d vanDetailsJSON
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, errs.Wrap(err, "van details")
		}
		return vehicle.VanDetails(d), nil
	default:
		return nil, vehicle.ErrInvalidKind
	}
}

func DetailsToJSON(d vehicle.Details) ([]byte, error) {
	switch v := d.(type) {
	case nil:
		return []byte("{}"), nil
	case vehicle.CarDetails:
		return json.Marshal(carDetailsJSON(v))
	case vehicle.BikeDetails:
		return json.Marshal(bikeDetailsJSON(v))
	case vehicle.VanDetails:
		return json.Marshal(vanDetailsJSON(v))
	default:
		return nil, vehicle.ErrInvalidKind
	}
}
