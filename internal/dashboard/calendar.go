package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dates"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// FallbackColor is used when neither the owning person nor the item itself
// carries a color
const FallbackColor = "#64748b"

// DayBucket holds one calendar day of the displayed week
type DayBucket struct {
	Date  time.Time             `json:"date"`
	Key   string                `json:"key"`
	Items []models.CalendarItem `json:"items"`
}

// ProjectWeek merges recurring and one-off items into exactly 7 ordered day
// buckets starting at weekStart (already anchored to the configured start
// weekday, midnight in loc).
//
// Recurring items use day-of-week 1=Sunday..7=Saturday and land on the single
// matching weekday of the displayed week; out-of-range values clamp into the
// grid rather than vanish. One-off items land on their literal date and only
// when it falls within the 7-day span. Item color resolves to the owning
// person's color, then the item's own hint, then FallbackColor.
func ProjectWeek(recurring []models.RecurringItem, oneOffs []models.OneOffItem, people map[uuid.UUID]models.Person, weekStart time.Time, loc *time.Location) []DayBucket {
	week := make([]DayBucket, 7)
	for i := range week {
		day := weekStart.AddDate(0, 0, i)
		week[i] = DayBucket{
			Date:  day,
			Key:   dates.FamilyDateKey(day, loc),
			Items: []models.CalendarItem{},
		}
	}

	startWeekday := int(weekStart.Weekday())
	for _, item := range recurring {
		// Day-of-week is 1=Sunday..7=Saturday; malformed values clamp into
		// range instead of dropping the item off the grid.
		dow := item.DayOfWeek
		if dow < 1 {
			dow = 1
		}
		if dow > 7 {
			dow = 7
		}
		offset := (dow - 1 - startWeekday + 7) % 7
		week[offset].Items = append(week[offset].Items, models.CalendarItem{
			ID:       item.ID,
			Title:    item.Title,
			TimeText: item.TimeText,
			Date:     week[offset].Date,
			PersonID: item.PersonID,
			Color:    resolveColor(people, item.PersonID, item.Color),
		})
	}

	for _, item := range oneOffs {
		day, err := dates.ParseDateOnly(item.Date, loc)
		if err != nil {
			continue
		}
		// Dates outside the displayed span are dropped from this week's view.
		idx := -1
		key := dates.FamilyDateKey(day, loc)
		for i := range week {
			if week[i].Key == key {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		week[idx].Items = append(week[idx].Items, models.CalendarItem{
			ID:       item.ID,
			Title:    item.Title,
			TimeText: item.TimeText,
			Date:     day,
			PersonID: item.PersonID,
			Color:    resolveColor(people, item.PersonID, item.Color),
		})
	}

	return week
}

func resolveColor(people map[uuid.UUID]models.Person, personID uuid.UUID, hint string) string {
	if p, ok := people[personID]; ok && p.Color != "" {
		return p.Color
	}
	if hint != "" {
		return hint
	}
	return FallbackColor
}
