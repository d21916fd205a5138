package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessZone(t *testing.T) {
	zone := BusinessZone(5)
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, zone)
	assert.Equal(t, "2025-06-01T10:00:00+05:00", ts.Format(time.RFC3339))

	_, offset := ts.Zone()
	assert.Equal(t, 5*3600, offset)
}

func TestParseRentalStamp(t *testing.T) {
	zone := BusinessZone(5)

	t.Run("24 hour input", func(t *testing.T) {
		ts, err := ParseRentalStamp("2025-06-01", "14:30", zone)
		require.NoError(t, err)
		assert.Equal(t, 14, ts.Hour())
		assert.Equal(t, 30, ts.Minute())
	})

	t.Run("stored 12 hour form", func(t *testing.T) {
		ts, err := ParseRentalStamp("2025-06-01", "2:30 PM", zone)
		require.NoError(t, err)
		assert.Equal(t, 14, ts.Hour())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseRentalStamp("2025-06-01", "half past two", zone)
		assert.Error(t, err)

		_, err = ParseRentalStamp("June 1st", "14:30", zone)
		assert.Error(t, err)
	})
}

func TestValidClock24(t *testing.T) {
	valid := []string{"00:00", "09:15", "14:30", "23:59"}
	for _, ts := range valid {
		assert.True(t, ValidClock24(ts), ts)
	}
	invalid := []string{"24:00", "9:15", "14:60", "2:30 PM", "", "14-30"}
	for _, ts := range invalid {
		assert.False(t, ValidClock24(ts), ts)
	}
}

func TestFormatClock12(t *testing.T) {
	zone := BusinessZone(5)
	morning := time.Date(2025, 6, 1, 9, 5, 0, 0, zone)
	assert.Equal(t, "9:05 AM", FormatClock12(morning))

	evening := time.Date(2025, 6, 1, 21, 45, 0, 0, zone)
	assert.Equal(t, "9:45 PM", FormatClock12(evening))
}
