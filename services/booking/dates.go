package booking

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

// clockLayouts accepted on input: 24-hour "HH:MM" from clients and the
// 12-hour display form the service itself stores.
var clockLayouts = []string{"15:04", "3:04 PM"}

var clock24Pattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// BusinessZone returns the fixed-offset location rental timestamps are
// interpreted in. All offset arithmetic is explicit; no locale round-trips.
func BusinessZone(offsetHours int) *time.Location {
	name := fmt.Sprintf("UTC+%d", offsetHours)
	if offsetHours < 0 {
		name = fmt.Sprintf("UTC%d", offsetHours)
	}
	return time.FixedZone(name, offsetHours*3600)
}

// ValidClock24 reports whether ts is a well-formed 24-hour "HH:MM" string.
func ValidClock24(ts string) bool {
	return clock24Pattern.MatchString(ts)
}

// ParseRentalStamp combines a "YYYY-MM-DD" date and a clock string into a
// time in the given zone.
func ParseRentalStamp(date, clock string, loc *time.Location) (time.Time, error) {
	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation(dateLayout+" "+layout, date+" "+clock, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid rental timestamp %q %q", date, clock)
}

// ParseRentalDate parses a bare "YYYY-MM-DD" date in the given zone.
func ParseRentalDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid rental date %q", date)
	}
	return t, nil
}

// FormatClock12 renders a time as the stored 12-hour display string.
func FormatClock12(t time.Time) string {
	return t.Format("3:04 PM")
}
