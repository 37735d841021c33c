//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/customer"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// memoryStore is a transactional in-memory store. Within works on a copy of
// the committed state and only publishes it when fn succeeds.
type memoryStore struct {
	bookings  map[uuid.UUID]booking.Booking
	vehicles  map[uuid.UUID]vehicle.Vehicle
	customers map[uuid.UUID]customer.Customer
	jobs      []shared.NotificationJob

	failJobs error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		bookings:  map[uuid.UUID]booking.Booking{},
		vehicles:  map[uuid.UUID]vehicle.Vehicle{},
		customers: map[uuid.UUID]customer.Customer{},
	}
}

func (s *memoryStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memoryTx{
		bookings:  maps.Clone(s.bookings),
		vehicles:  maps.Clone(s.vehicles),
		customers: s.customers,
		jobs:      slices.Clone(s.jobs),
		failJobs:  s.failJobs,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.bookings, s.vehicles, s.jobs = tx.bookings, tx.vehicles, tx.jobs
	return nil
}

func (s *memoryStore) putVehicle(v *vehicle.Vehicle)   { s.vehicles[v.ID()] = *v }
func (s *memoryStore) putCustomer(c *customer.Customer) { s.customers[c.ID()] = *c }
func (s *memoryStore) putBooking(b *booking.Booking)   { s.bookings[b.ID()] = *b }

func (s *memoryStore) vehicle(id uuid.UUID) vehicle.Vehicle { return s.vehicles[id] }
func (s *memoryStore) booking(id uuid.UUID) booking.Booking { return s.bookings[id] }

type memoryTx struct {
	bookings  map[uuid.UUID]booking.Booking
	vehicles  map[uuid.UUID]vehicle.Vehicle
	customers map[uuid.UUID]customer.Customer
	jobs      []shared.NotificationJob
	failJobs  error
}

func (tx *memoryTx) Bookings() shared.BookingRepository           { return memoryBookings{tx} }
func (tx *memoryTx) Vehicles() shared.VehicleRepository           { return memoryVehicles{tx} }
func (tx *memoryTx) Customers() shared.CustomerRepository         { return memoryCustomers{tx} }
func (tx *memoryTx) Notifications() shared.NotificationRepository { return memoryJobs{tx} }

type memoryBookings struct{ tx *memoryTx }

func (r memoryBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.tx.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

func (r memoryBookings) Create(_ context.Context, b *booking.Booking) error {
	r.tx.bookings[b.ID()] = *b
	return nil
}

func (r memoryBookings) Save(_ context.Context, b *booking.Booking) error {
	if _, ok := r.tx.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.tx.bookings[b.ID()] = *b
	return nil
}

type memoryVehicles struct{ tx *memoryTx }

func (r memoryVehicles) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.tx.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return &v, nil
}

func (r memoryVehicles) Save(_ context.Context, v *vehicle.Vehicle) error {
	r.tx.vehicles[v.ID()] = *v
	return nil
}

type memoryCustomers struct{ tx *memoryTx }

func (r memoryCustomers) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := r.tx.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return &c, nil
}

type memoryJobs struct{ tx *memoryTx }

func (r memoryJobs) CreateJob(_ context.Context, job shared.NotificationJob) error {
	if r.tx.failJobs != nil {
		return r.tx.failJobs
	}
	r.tx.jobs = append(r.tx.jobs, job)
	return nil
}
