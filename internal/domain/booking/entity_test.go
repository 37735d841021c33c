//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"vehicle-rental/internal/domain/booking"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newVehicle(t *testing.T, rate string, available bool) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.ReconstructVehicle(uuid.New(), vehicle.KindCar, "Toyota", "Corolla",
		decimal.RequireFromString(rate), available, "KA-01", 2022, "", vehicle.CarDetails{NumberOfSeats: 5})
	require.NoError(t, err)
	return v
}

func newFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(today), booking.NewDailyRateCostCalculator())
}

func TestNewRentalPeriod(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		errIs    error
		wantDays int64
	}{
		{name: "same day OK", start: date(2025, 3, 10), end: date(2025, 3, 10), wantDays: 0},
		{name: "three days OK", start: date(2025, 3, 12), end: date(2025, 3, 15), wantDays: 3},
		{name: "start is today with a time of day OK", start: today, end: date(2025, 3, 11), wantDays: 1},
		{name: "start yesterday NG", start: date(2025, 3, 9), end: date(2025, 3, 12), errIs: booking.ErrStartDateInPast},
		{name: "end before start NG", start: date(2025, 3, 12), end: date(2025, 3, 11), errIs: booking.ErrEndBeforeStart},
		{name: "past start reported before inverted range", start: date(2025, 3, 1), end: date(2025, 2, 1), errIs: booking.ErrStartDateInPast},
		{name: "leap day crossed", start: date(2028, 2, 28), end: date(2028, 3, 1), wantDays: 2},
		{name: "beyond the time.Duration range OK", start: date(2025, 3, 10), end: date(2400, 3, 10), wantDays: 136966},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := booking.NewRentalPeriod(tc.start, tc.end, today)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, p.Days())
		})
	}
}

func TestDailyRateCostCalculator(t *testing.T) {
	calc := booking.NewDailyRateCostCalculator()

	testCases := []struct {
		name  string
		rate  string
		start time.Time
		end   time.Time
		want  string
	}{
		{name: "same day is billed as one day", rate: "50.00", start: date(2025, 3, 10), end: date(2025, 3, 10), want: "50.00"},
		{name: "one day", rate: "50.00", start: date(2025, 3, 10), end: date(2025, 3, 11), want: "50.00"},
		{name: "three days", rate: "50.00", start: date(2025, 3, 10), end: date(2025, 3, 13), want: "150.00"},
		{name: "fractional rate", rate: "19.99", start: date(2025, 3, 10), end: date(2025, 3, 17), want: "139.93"},
		{name: "free vehicle", rate: "0", start: date(2025, 3, 10), end: date(2025, 3, 12), want: "0"},
		{name: "centuries long rental is billed per day", rate: "1", start: date(2025, 3, 10), end: date(2400, 3, 10), want: "136966"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := booking.NewRentalPeriod(tc.start, tc.end, today)
			require.NoError(t, err)

			got := calc.Calculate(decimal.RequireFromString(tc.rate), p)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestFactory_CreateBooking(t *testing.T) {
	customerID := uuid.New()
	period, err := booking.NewRentalPeriod(date(2025, 3, 10), date(2025, 3, 13), today)
	require.NoError(t, err)
	note, err := booking.NewNote("child seat please")
	require.NoError(t, err)

	t.Run("available vehicle creates a pending booking", func(t *testing.T) {
		v := newVehicle(t, "50.00", true)

		b, err := newFactory().CreateBooking(v, customerID, period, "CARD", note)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, v.ID(), b.VehicleID())
		assert.Equal(t, customerID, b.CustomerID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, "CARD", b.PaymentMethod())
		assert.Equal(t, "child seat please", b.Note().String())
		assert.Equal(t, today, b.CreatedAt())
		assert.True(t, decimal.RequireFromString("150.00").Equal(b.TotalCost()))
	})

	t.Run("unavailable vehicle is rejected", func(t *testing.T) {
		v := newVehicle(t, "50.00", false)

		b, err := newFactory().CreateBooking(v, customerID, period, "", booking.Note{})
		require.ErrorIs(t, err, booking.ErrVehicleNotAvailable)
		assert.Nil(t, b)
	})
}

func TestBooking_ChangeStatus(t *testing.T) {
	b := booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(),
		booking.ReconstructRentalPeriod(date(2025, 3, 10), date(2025, 3, 11)),
		decimal.NewFromInt(50), booking.StatusCancelled, "", booking.Note{}, today)

	prev, err := b.ChangeStatus(booking.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, prev)
	assert.Equal(t, booking.StatusPending, b.Status())

	_, err = b.ChangeStatus(booking.Status("ARCHIVED"))
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
	assert.Equal(t, booking.StatusPending, b.Status())
}

func TestBooking_Settle(t *testing.T) {
	testCases := []struct {
		name       string
		status     booking.Status
		errIs      error
		wantStatus booking.Status
		wantMethod string
	}{
		{name: "pending is settled", status: booking.StatusPending, wantStatus: booking.StatusConfirmed, wantMethod: "card"},
		{name: "confirmed is settled again", status: booking.StatusConfirmed, wantStatus: booking.StatusConfirmed, wantMethod: "card"},
		{name: "completed is not payable", status: booking.StatusCompleted, errIs: booking.ErrNotPayable, wantStatus: booking.StatusCompleted, wantMethod: "CASH"},
		{name: "cancelled is not payable", status: booking.StatusCancelled, errIs: booking.ErrNotPayable, wantStatus: booking.StatusCancelled, wantMethod: "CASH"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(),
				booking.ReconstructRentalPeriod(date(2025, 3, 10), date(2025, 3, 11)),
				decimal.NewFromInt(50), tc.status, "CASH", booking.Note{}, today)

			err := b.Settle("card")
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, b.Status())
			assert.Equal(t, tc.wantMethod, b.PaymentMethod())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, in := range []string{"confirmed", "Confirmed", " CONFIRMED "} {
		s, err := booking.ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, booking.StatusConfirmed, s)
	}

	_, err := booking.ParseStatus("refunded")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, booking.StatusCompleted.ReleasesVehicle())
	assert.True(t, booking.StatusCancelled.ReleasesVehicle())
	assert.False(t, booking.StatusPending.ReleasesVehicle())
	assert.False(t, booking.StatusConfirmed.ReleasesVehicle())

	assert.True(t, booking.StatusPending.IsPayable())
	assert.True(t, booking.StatusConfirmed.IsPayable())
	assert.False(t, booking.StatusCompleted.IsPayable())
	assert.False(t, booking.StatusCancelled.IsPayable())
}

func TestNewNote(t *testing.T) {
	_, err := booking.NewNote(strings.Repeat("a", booking.MaxNoteLength))
	assert.NoError(t, err)

	_, err = booking.NewNote(strings.Repeat("a", booking.MaxNoteLength+1))
	assert.ErrorIs(t, err, booking.ErrNoteTooLong)
}
