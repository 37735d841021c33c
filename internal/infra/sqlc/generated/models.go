package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViews struct {
	ID            uuid.UUID          `json:"id"`
	VehicleID     uuid.UUID          `json:"vehicle_id"`
	VehicleBrand  string             `json:"vehicle_brand"`
	VehicleModel  string             `json:"vehicle_model"`
	VehicleType   string             `json:"vehicle_type"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	StartDate     pgtype.Date        `json:"start_date"`
	EndDate       pgtype.Date        `json:"end_date"`
	TotalCost     pgtype.Numeric     `json:"total_cost"`
	Status        string             `json:"status"`
	PaymentMethod pgtype.Text        `json:"payment_method"`
	Notes         pgtype.Text        `json:"notes"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type Bookings struct {
	ID            uuid.UUID          `json:"id"`
	VehicleID     uuid.UUID          `json:"vehicle_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	StartDate     pgtype.Date        `json:"start_date"`
	EndDate       pgtype.Date        `json:"end_date"`
	TotalCost     pgtype.Numeric     `json:"total_cost"`
	Status        string             `json:"status"`
	PaymentMethod pgtype.Text        `json:"payment_method"`
	Notes         pgtype.Text        `json:"notes"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Attempts    int32              `json:"attempts"`
	Status      string             `json:"status"`
	LastError   pgtype.Text        `json:"last_error"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Users struct {
	ID                   uuid.UUID          `json:"id"`
	Name                 string             `json:"name"`
	Email                string             `json:"email"`
	Role                 string             `json:"role"`
	DrivingLicenseNumber pgtype.Text        `json:"driving_license_number"`
	Address              pgtype.Text        `json:"address"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
}

type Vehicles struct {
	ID                 uuid.UUID          `json:"id"`
	VehicleType        string             `json:"vehicle_type"`
	Brand              string             `json:"brand"`
	Model              string             `json:"model"`
	RentalPricePerDay  pgtype.Numeric     `json:"rental_price_per_day"`
	Availability       bool               `json:"availability"`
	RegistrationNumber string             `json:"registration_number"`
	YearOfManufacture  int32              `json:"year_of_manufacture"`
	Description        pgtype.Text        `json:"description"`
	Details            []byte             `json:"details"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}
