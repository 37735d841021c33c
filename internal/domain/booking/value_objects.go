package booking

import (
	"errors"
	"time"
	"unicode/utf8"

	"vehicle-rental/internal/pkg/clock"
)

const (
	MaxNoteLength = 500
	secondsPerDay = 24 * 60 * 60
)

var (
	ErrStartDateInPast = errors.New("start date cannot be in the past")
	ErrEndBeforeStart  = errors.New("end date must not be before start date")
	ErrNoteTooLong     = errors.New("notes must be at most 500 characters")
)

// RentalPeriod is an inclusive pair of civil dates.
type RentalPeriod struct {
	start time.Time
	end   time.Time
}

// NewRentalPeriod validates a requested period against today's date.
func NewRentalPeriod(start, end, today time.Time) (RentalPeriod, error) {
	start, end, today = clock.DateOf(start), clock.DateOf(end), clock.DateOf(today)

	if start.Before(today) {
		return RentalPeriod{}, ErrStartDateInPast
	}
	if end.Before(start) {
		return RentalPeriod{}, ErrEndBeforeStart
	}
	return RentalPeriod{start: start, end: end}, nil
}

// ReconstructRentalPeriod skips validation for periods loaded from storage.
func ReconstructRentalPeriod(start, end time.Time) RentalPeriod {
	return RentalPeriod{start: clock.DateOf(start), end: clock.DateOf(end)}
}

func (p RentalPeriod) Start() time.Time { return p.start }
func (p RentalPeriod) End() time.Time   { return p.end }

// Days is the whole number of days from start to end; zero for same-day rentals.
// Both ends are UTC midnights, so the second difference is a whole number of days.
func (p RentalPeriod) Days() int64 {
	return (p.end.Unix() - p.start.Unix()) / secondsPerDay
}

// BillableDays never goes below one.
func (p RentalPeriod) BillableDays() int64 {
	return max(p.Days(), 1)
}

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	if utf8.RuneCountInString(s) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: s}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
