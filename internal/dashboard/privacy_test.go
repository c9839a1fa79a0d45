package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

func privacyFixture() models.Snapshot {
	privateID := uuid.MustParse("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	publicID := uuid.MustParse("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")

	return models.Snapshot{
		People: []models.Person{
			{ID: privateID, Name: "Nonna", Color: "#8b5cf6", Type: models.PersonTypeGuest, IsPrivate: true},
			{ID: publicID, Name: "Theo", Color: "#3b82f6", Type: models.PersonTypeKid},
		},
		RecurringItems: []models.RecurringItem{
			{ID: uuid.New(), Title: "Therapy", PersonID: privateID, IsPrivate: true},
			{ID: uuid.New(), Title: "Piano", PersonID: publicID},
		},
		OneOffItems: []models.OneOffItem{
			{ID: uuid.New(), Title: "Checkup", Date: "2024-03-01", PersonID: privateID, IsPrivate: true},
		},
		ReplenishItems: []models.ReplenishItem{
			{ID: uuid.New(), Title: "Medication", Active: true, IsPrivate: true},
			{ID: uuid.New(), Title: "Oat milk", Active: true},
		},
		RoutineTemplates: []models.RoutineTemplate{
			{ID: uuid.New(), PersonID: privateID, Title: "Private routine", Active: true, IsPrivate: true},
			{ID: uuid.New(), PersonID: publicID, Title: "Make bed", Active: true},
		},
		HomeschoolNotes: []models.HomeschoolNote{
			{ID: uuid.New(), PersonID: privateID, Topics: []string{"x"}, IsPrivate: true},
		},
	}
}

func TestEffectiveVisitModeDecisionTable(t *testing.T) {
	cases := []struct {
		bypass, local, persisted, want bool
	}{
		{bypass: true, local: true, persisted: true, want: false},
		{bypass: true, local: false, persisted: true, want: false},
		{bypass: false, local: true, persisted: false, want: true},
		{bypass: false, local: false, persisted: true, want: true},
		{bypass: false, local: true, persisted: true, want: true},
		{bypass: false, local: false, persisted: false, want: false},
	}
	for _, tc := range cases {
		got := EffectiveVisitMode(tc.bypass, tc.local, tc.persisted)
		assert.Equal(t, tc.want, got, "bypass=%v local=%v persisted=%v", tc.bypass, tc.local, tc.persisted)
	}
}

func TestApplyVisitModeMasksPrivatePeople(t *testing.T) {
	snap := privacyFixture()
	out := ApplyVisitMode(snap, PrivacyOptions{VisitMode: true})

	require.Len(t, out.People, 2)
	masked := out.People[0]
	assert.Equal(t, MaskedPersonName, masked.Name)
	assert.Equal(t, MaskedPersonColor, masked.Color)
	// Id and type survive so references still resolve.
	assert.Equal(t, snap.People[0].ID, masked.ID)
	assert.Equal(t, models.PersonTypeGuest, masked.Type)

	// Public person untouched.
	assert.Equal(t, "Theo", out.People[1].Name)

	// The masked person's id still resolves through the index.
	_, ok := out.PersonIndex()[snap.People[0].ID]
	assert.True(t, ok)
}

func TestApplyVisitModeDropsPrivateRecords(t *testing.T) {
	out := ApplyVisitMode(privacyFixture(), PrivacyOptions{VisitMode: true})

	assert.Len(t, out.RecurringItems, 1)
	assert.Equal(t, "Piano", out.RecurringItems[0].Title)
	assert.Empty(t, out.OneOffItems)
	assert.Len(t, out.ReplenishItems, 1)
	assert.Len(t, out.RoutineTemplates, 1)
	assert.Empty(t, out.HomeschoolNotes)
	assert.True(t, out.Settings.VisitMode)
}

func TestApplyVisitModePersistedSettingForcesHiding(t *testing.T) {
	snap := privacyFixture()
	snap.Settings.VisitMode = true

	out := ApplyVisitMode(snap, PrivacyOptions{})
	assert.True(t, out.Settings.VisitMode)
	assert.Len(t, out.RecurringItems, 1)
}

func TestApplyVisitModeBypassDisablesAllMasking(t *testing.T) {
	snap := privacyFixture()
	snap.Settings.VisitMode = true

	out := ApplyVisitMode(snap, PrivacyOptions{VisitMode: true, Bypass: true})
	assert.False(t, out.Settings.VisitMode)
	assert.Equal(t, "Nonna", out.People[0].Name)
	assert.Len(t, out.RecurringItems, 2)
	assert.Len(t, out.HomeschoolNotes, 1)
}

func TestApplyVisitModePassThroughWhenOff(t *testing.T) {
	snap := privacyFixture()
	out := ApplyVisitMode(snap, PrivacyOptions{})

	assert.Equal(t, snap.People, out.People)
	assert.Equal(t, snap.RecurringItems, out.RecurringItems)
	assert.False(t, out.Settings.VisitMode)
}
