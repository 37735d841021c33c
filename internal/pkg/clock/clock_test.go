//go:build unit

package clock_test

import (
	"testing"
	"time"

	"vehicle-rental/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	testCases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "utc afternoon",
			now:  time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "local date wins over the utc date",
			now:  time.Date(2025, 3, 10, 1, 0, 0, 0, tokyo),
			want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := clock.Today(clock.NewMockClock(tc.now))

			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
