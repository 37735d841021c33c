package booking

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsPayable reports whether a payment may still be settled against the booking.
func (s Status) IsPayable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ReleasesVehicle reports whether entering s frees the booked vehicle.
func (s Status) ReleasesVehicle() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseStatus accepts any letter case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
