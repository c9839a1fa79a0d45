package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

var calPersonID = uuid.MustParse("cccccccc-cccc-4ccc-8ccc-cccccccccccc")

// Sunday 2024-02-11 .. Saturday 2024-02-17
func sundayWeekStart() time.Time {
	return time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)
}

func calPeople() map[uuid.UUID]models.Person {
	return map[uuid.UUID]models.Person{
		calPersonID: {ID: calPersonID, Name: "Theo", Color: "#3b82f6", Type: models.PersonTypeKid},
	}
}

func TestProjectWeekProducesSevenOrderedBuckets(t *testing.T) {
	week := ProjectWeek(nil, nil, calPeople(), sundayWeekStart(), time.UTC)

	require.Len(t, week, 7)
	assert.Equal(t, "2024-02-11", week[0].Key)
	assert.Equal(t, "2024-02-17", week[6].Key)
	for _, bucket := range week {
		assert.NotNil(t, bucket.Items)
	}
}

func TestProjectWeekPlacesRecurringByWeekday(t *testing.T) {
	recurring := []models.RecurringItem{
		// 1=Sunday, 4=Wednesday, 7=Saturday
		{ID: uuid.New(), Title: "Church", DayOfWeek: 1, PersonID: calPersonID},
		{ID: uuid.New(), Title: "Swim", DayOfWeek: 4, TimeText: "4:00 pm", PersonID: calPersonID},
		{ID: uuid.New(), Title: "Pancakes", DayOfWeek: 7, PersonID: calPersonID},
	}

	week := ProjectWeek(recurring, nil, calPeople(), sundayWeekStart(), time.UTC)

	require.Len(t, week[0].Items, 1)
	assert.Equal(t, "Church", week[0].Items[0].Title)
	require.Len(t, week[3].Items, 1)
	assert.Equal(t, "Swim", week[3].Items[0].Title)
	require.Len(t, week[6].Items, 1)
	assert.Equal(t, "Pancakes", week[6].Items[0].Title)
}

func TestProjectWeekClampsMalformedDayOfWeek(t *testing.T) {
	recurring := []models.RecurringItem{
		{ID: uuid.New(), Title: "Out of range high", DayOfWeek: 10, PersonID: calPersonID},
		{ID: uuid.New(), Title: "Out of range low", DayOfWeek: -3, PersonID: calPersonID},
	}

	week := ProjectWeek(recurring, nil, calPeople(), sundayWeekStart(), time.UTC)

	total := 0
	for _, bucket := range week {
		total += len(bucket.Items)
	}
	// Both items land somewhere in the visible week instead of vanishing.
	assert.Equal(t, 2, total)
	assert.Equal(t, "Out of range high", week[6].Items[0].Title)
	assert.Equal(t, "Out of range low", week[0].Items[0].Title)
}

func TestProjectWeekPlacesRecurringWithMondayStart(t *testing.T) {
	// Monday 2024-02-12 .. Sunday 2024-02-18: Sunday is the last bucket.
	mondayStart := time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)
	recurring := []models.RecurringItem{
		{ID: uuid.New(), Title: "Church", DayOfWeek: 1, PersonID: calPersonID},
		{ID: uuid.New(), Title: "Library", DayOfWeek: 2, PersonID: calPersonID},
	}

	week := ProjectWeek(recurring, nil, calPeople(), mondayStart, time.UTC)

	require.Len(t, week[6].Items, 1)
	assert.Equal(t, "Church", week[6].Items[0].Title)
	require.Len(t, week[0].Items, 1)
	assert.Equal(t, "Library", week[0].Items[0].Title)
}

func TestProjectWeekFiltersOneOffsBySpan(t *testing.T) {
	oneOffs := []models.OneOffItem{
		{ID: uuid.New(), Title: "Dentist", Date: "2024-02-13", PersonID: calPersonID},
		{ID: uuid.New(), Title: "Last day", Date: "2024-02-17", PersonID: calPersonID},
		{ID: uuid.New(), Title: "Too early", Date: "2024-02-10", PersonID: calPersonID},
		{ID: uuid.New(), Title: "Too late", Date: "2024-02-18", PersonID: calPersonID},
		{ID: uuid.New(), Title: "Garbage date", Date: "not-a-date", PersonID: calPersonID},
	}

	week := ProjectWeek(nil, oneOffs, calPeople(), sundayWeekStart(), time.UTC)

	require.Len(t, week[2].Items, 1)
	assert.Equal(t, "Dentist", week[2].Items[0].Title)
	require.Len(t, week[6].Items, 1)
	assert.Equal(t, "Last day", week[6].Items[0].Title)

	total := 0
	for _, bucket := range week {
		total += len(bucket.Items)
	}
	assert.Equal(t, 2, total)
}

func TestProjectWeekResolvesColors(t *testing.T) {
	unknownPerson := uuid.MustParse("dddddddd-dddd-4ddd-8ddd-dddddddddddd")
	recurring := []models.RecurringItem{
		{ID: uuid.New(), Title: "Known owner", DayOfWeek: 1, PersonID: calPersonID},
		{ID: uuid.New(), Title: "Hinted", DayOfWeek: 1, PersonID: unknownPerson, Color: "#112233"},
		{ID: uuid.New(), Title: "Fallback", DayOfWeek: 1, PersonID: unknownPerson},
	}

	week := ProjectWeek(recurring, nil, calPeople(), sundayWeekStart(), time.UTC)

	require.Len(t, week[0].Items, 3)
	assert.Equal(t, "#3b82f6", week[0].Items[0].Color)
	assert.Equal(t, "#112233", week[0].Items[1].Color)
	assert.Equal(t, FallbackColor, week[0].Items[2].Color)
}
