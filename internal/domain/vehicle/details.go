package vehicle

// Details is the variant payload of a vehicle. Only the types in this file
// implement it.
type Details interface {
	Kind() Kind
	isDetails()
}

type CarDetails struct {
	NumberOfSeats      int
	FuelType           string
	TransmissionType   string
	HasAirConditioning bool
}

func (CarDetails) Kind() Kind { return KindCar }
func (CarDetails) isDetails() {}

type BikeDetails struct {
	EngineCapacityCC int
	BikeType         string
	HasHelmet        bool
}

func (BikeDetails) Kind() Kind { return KindBike }
func (BikeDetails) isDetails() {}

type VanDetails struct {
	CargoCapacity  float64
	NumberOfSeats  int
	HasSlidingDoor bool
	VanType        string
}

func (VanDetails) Kind() Kind { return KindVan }
func (VanDetails) isDetails() {}
