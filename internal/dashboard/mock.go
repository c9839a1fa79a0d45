package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// Fixed ids so the mock dataset is stable across loads
var (
	mockMaraID  = uuid.MustParse("4b4d3cf1-9a6e-4b65-8b0a-111111111111")
	mockTheoID  = uuid.MustParse("4b4d3cf1-9a6e-4b65-8b0a-222222222222")
	mockIvyID   = uuid.MustParse("4b4d3cf1-9a6e-4b65-8b0a-333333333333")
	mockNonnaID = uuid.MustParse("4b4d3cf1-9a6e-4b65-8b0a-444444444444")
)

// MockSnapshot returns the fixed offline dataset served when no backend is
// configured outside production. Shaped identically to store-loaded data.
func MockSnapshot() models.Snapshot {
	sortFirst, sortSecond, sortThird := 1, 2, 3
	reference := "library shelf 3"

	return models.Snapshot{
		People: []models.Person{
			{ID: mockMaraID, Name: "Mara", Color: "#f59e0b", Type: models.PersonTypeAdult, SortOrder: &sortFirst},
			{ID: mockTheoID, Name: "Theo", Color: "#3b82f6", Type: models.PersonTypeKid, SortOrder: &sortSecond},
			{ID: mockIvyID, Name: "Ivy", Color: "#10b981", Type: models.PersonTypeKid, SortOrder: &sortThird},
			{ID: mockNonnaID, Name: "Nonna", Color: "#8b5cf6", Type: models.PersonTypeGuest, IsPrivate: true},
		},
		RecurringItems: []models.RecurringItem{
			{ID: uuid.MustParse("aa000000-0000-4000-8000-000000000001"), Title: "Piano lesson", DayOfWeek: 2, TimeText: "3:30 pm", PersonID: mockTheoID},
			{ID: uuid.MustParse("aa000000-0000-4000-8000-000000000002"), Title: "Swim practice", DayOfWeek: 4, TimeText: "4:00 pm", PersonID: mockIvyID},
			{ID: uuid.MustParse("aa000000-0000-4000-8000-000000000003"), Title: "Co-op morning", DayOfWeek: 6, TimeText: "9:00 am", PersonID: mockMaraID},
			{ID: uuid.MustParse("aa000000-0000-4000-8000-000000000004"), Title: "Therapy", DayOfWeek: 3, TimeText: "1:00 pm", PersonID: mockNonnaID, IsPrivate: true},
		},
		OneOffItems: []models.OneOffItem{
			{ID: uuid.MustParse("bb000000-0000-4000-8000-000000000001"), Title: "Dentist", Date: time.Now().Format("2006-01-02"), TimeText: "10:15 am", PersonID: mockTheoID},
			{ID: uuid.MustParse("bb000000-0000-4000-8000-000000000002"), Title: "Birthday party", Date: time.Now().AddDate(0, 0, 2).Format("2006-01-02"), TimeText: "2:00 pm", PersonID: mockIvyID},
		},
		ReplenishItems: []models.ReplenishItem{
			{ID: uuid.MustParse("cc000000-0000-4000-8000-000000000001"), Title: "Oat milk", Urgency: models.UrgencyNow, Active: true},
			{ID: uuid.MustParse("cc000000-0000-4000-8000-000000000002"), Title: "Printer paper", Urgency: models.UrgencySoon, Active: true},
			{ID: uuid.MustParse("cc000000-0000-4000-8000-000000000003"), Title: "Toothpaste", Urgency: models.UrgencySoon, Active: true},
		},
		RoutineTemplates: []models.RoutineTemplate{
			{ID: uuid.MustParse("dd000000-0000-4000-8000-000000000001"), PersonID: mockTheoID, Title: "Make bed", Active: true},
			{ID: uuid.MustParse("dd000000-0000-4000-8000-000000000002"), PersonID: mockTheoID, Title: "Practice piano", Active: true},
			{ID: uuid.MustParse("dd000000-0000-4000-8000-000000000003"), PersonID: mockIvyID, Title: "Feed the cat", Active: true},
			{ID: uuid.MustParse("dd000000-0000-4000-8000-000000000004"), PersonID: mockIvyID, Title: "Reading time", Active: true},
		},
		RoutineChecks: []models.RoutineCheck{},
		WeeklyFocus: []models.WeeklyFocus{
			{ID: uuid.MustParse("ee000000-0000-4000-8000-000000000001"), Text: "Patience with each other", Reference: &reference, Active: true},
		},
		HomeschoolNotes: []models.HomeschoolNote{
			{ID: uuid.MustParse("ff000000-0000-4000-8000-000000000001"), PersonID: mockTheoID, Topics: []string{"Fractions", "State history", "Copywork"}, CreatedAt: time.Now().AddDate(0, 0, -1)},
			{ID: uuid.MustParse("ff000000-0000-4000-8000-000000000002"), PersonID: mockIvyID, Topics: []string{"Phonics", "Nature journal"}, CreatedAt: time.Now().AddDate(0, 0, -1)},
		},
		Settings: models.Settings{VisitMode: false},
	}
}
