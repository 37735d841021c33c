package customer

import (
	"github.com/google/uuid"
)

// Customer is read only from the booking side; profiles are managed elsewhere.
type Customer struct {
	id                   uuid.UUID
	name                 string
	email                string
	drivingLicenseNumber string
	address              string
}

func ReconstructCustomer(id uuid.UUID, name, email, drivingLicenseNumber, address string) *Customer {
	return &Customer{
		id:                   id,
		name:                 name,
		email:                email,
		drivingLicenseNumber: drivingLicenseNumber,
		address:              address,
	}
}

func (c *Customer) ID() uuid.UUID                { return c.id }
func (c *Customer) Name() string                 { return c.name }
func (c *Customer) Email() string                { return c.email }
func (c *Customer) DrivingLicenseNumber() string { return c.drivingLicenseNumber }
func (c *Customer) Address() string              { return c.address }
