package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRented(t *testing.T) {
	zone := BusinessZone(5)
	stamp := func(date, clock string) time.Time {
		ts, err := ParseRentalStamp(date, clock, zone)
		if err != nil {
			t.Fatalf("bad stamp %s %s: %v", date, clock, err)
		}
		return ts
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day same time", stamp("2025-06-01", "10:00"), stamp("2025-06-01", "10:00"), 1},
		{"same day later", stamp("2025-06-01", "09:00"), stamp("2025-06-01", "18:00"), 2},
		{"three day span", stamp("2025-06-01", "10:00"), stamp("2025-06-03", "10:00"), 3},
		{"partial extra day", stamp("2025-06-01", "10:00"), stamp("2025-06-02", "09:00"), 2},
		{"end before start", stamp("2025-06-03", "10:00"), stamp("2025-06-01", "10:00"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRented(tt.start, tt.end))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, TotalPrice(3, 100))
	assert.Equal(t, 0.0, TotalPrice(0, 100))
	assert.InDelta(t, 149.97, TotalPrice(3, 49.99), 1e-9)
}
