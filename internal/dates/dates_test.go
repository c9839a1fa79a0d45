package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyDateRollsBackAcrossUTCMidnight(t *testing.T) {
	// 02:30 UTC on Jan 1 is still Dec 31 in UTC-3.
	loc := time.FixedZone("UTC-3", -3*60*60)
	ts := time.Date(2024, 1, 1, 2, 30, 0, 0, time.UTC)

	d := FamilyDate(ts, loc)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 31, d.Day())
	assert.Equal(t, 0, d.Hour())

	assert.Equal(t, "2023-12-31", FamilyDateKey(ts, loc))
}

func TestFamilyDateRollsForwardAcrossUTCMidnight(t *testing.T) {
	// 22:30 UTC on Dec 31 is already Jan 1 in UTC+3.
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2023, 12, 31, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01", FamilyDateKey(ts, loc))
}

func TestFamilyDateAndKeyAgree(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-8", -8*60*60),
		time.FixedZone("UTC+13", 13*60*60),
	}
	stamps := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC),
		time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, loc := range zones {
		for _, ts := range stamps {
			d := FamilyDate(ts, loc)
			key := FamilyDateKey(ts, loc)
			assert.Equal(t, d.Format(DateKeyLayout), key, "zone %s ts %s", loc, ts)

			// Re-deriving the key from the stripped date is idempotent.
			assert.Equal(t, key, FamilyDateKey(d, loc))
		}
	}
}

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2024-02-10", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, 0, d.Hour())
}

func TestParseDateOnlyNoZoneShift(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*60*60)
	d, err := ParseDateOnly("2024-02-10", loc)
	require.NoError(t, err)
	// The named day is preserved in the target zone, never shifted.
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, loc, d.Location())
}

func TestParseDateOnlyRejectsMalformed(t *testing.T) {
	cases := []string{"", "2024", "2024-02", "not-a-date", "2024-x-10", "2024--10", "2024-0-10", "-2024-02-10"}
	for _, s := range cases {
		d, err := ParseDateOnly(s, time.UTC)
		assert.Error(t, err, "input %q", s)
		assert.True(t, d.IsZero(), "input %q", s)
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-02-14 is a Wednesday.
	wed := time.Date(2024, 2, 14, 15, 0, 0, 0, time.UTC)

	sundayStart := WeekStart(wed, time.Sunday, time.UTC)
	assert.Equal(t, "2024-02-11", sundayStart.Format(DateKeyLayout))

	mondayStart := WeekStart(wed, time.Monday, time.UTC)
	assert.Equal(t, "2024-02-12", mondayStart.Format(DateKeyLayout))

	// Anchoring on the start day itself returns that same day.
	sun := time.Date(2024, 2, 11, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-11", WeekStart(sun, time.Sunday, time.UTC).Format(DateKeyLayout))
}
