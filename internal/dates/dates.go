// Package dates computes calendar dates and date keys in the family's
// timezone. Routine checks are keyed by the family-local day, independent of
// the viewing device's zone, so "today" must always be derived here.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKeyLayout is the canonical YYYY-MM-DD key format
const DateKeyLayout = "2006-01-02"

// FamilyDate returns t's calendar date in loc, stripped to local midnight.
// A timestamp shortly after UTC midnight still lands on the previous local
// day when loc sits west of UTC.
func FamilyDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// FamilyDateKey returns the canonical YYYY-MM-DD key for t's date in loc
func FamilyDateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateKeyLayout)
}

// ParseDateOnly parses a YYYY-MM-DD string into a midnight date in loc
// without any timezone shifting of the named day. Strings that do not parse
// into three positive integers yield a zero time and an error.
func ParseDateOnly(s string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("invalid date %q", s)
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, loc), nil
}

// WeekStart returns the most recent occurrence of startDay on or before t's
// family-local date. This anchors the 7-day grid the dashboard displays.
func WeekStart(t time.Time, startDay time.Weekday, loc *time.Location) time.Time {
	d := FamilyDate(t, loc)
	back := (int(d.Weekday()) - int(startDay) + 7) % 7
	return d.AddDate(0, 0, -back)
}
