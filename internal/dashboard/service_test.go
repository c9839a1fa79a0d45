package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// fakeStore serves a fixed snapshot and can fail single collections or the
// routine-check upsert on demand.
type fakeStore struct {
	snap models.Snapshot

	failChecks bool
	failUpsert bool

	upserted []models.RoutineCheck
}

var errStore = errors.New("boom")

func (f *fakeStore) People(ctx context.Context) ([]models.Person, error) {
	return f.snap.People, nil
}

func (f *fakeStore) RecurringItems(ctx context.Context) ([]models.RecurringItem, error) {
	return f.snap.RecurringItems, nil
}

func (f *fakeStore) OneOffItems(ctx context.Context) ([]models.OneOffItem, error) {
	return f.snap.OneOffItems, nil
}

func (f *fakeStore) ReplenishItems(ctx context.Context) ([]models.ReplenishItem, error) {
	return f.snap.ReplenishItems, nil
}

func (f *fakeStore) RoutineTemplates(ctx context.Context) ([]models.RoutineTemplate, error) {
	return f.snap.RoutineTemplates, nil
}

func (f *fakeStore) RoutineChecks(ctx context.Context) ([]models.RoutineCheck, error) {
	if f.failChecks {
		return nil, errStore
	}
	return f.snap.RoutineChecks, nil
}

func (f *fakeStore) WeeklyFocus(ctx context.Context) ([]models.WeeklyFocus, error) {
	return f.snap.WeeklyFocus, nil
}

func (f *fakeStore) HomeschoolNotes(ctx context.Context) ([]models.HomeschoolNote, error) {
	return f.snap.HomeschoolNotes, nil
}

func (f *fakeStore) Settings(ctx context.Context) (models.Settings, error) {
	return f.snap.Settings, nil
}

func (f *fakeStore) UpsertRoutineCheck(ctx context.Context, check models.RoutineCheck) error {
	if f.failUpsert {
		return errStore
	}
	f.upserted = append(f.upserted, check)
	return nil
}

func newTestService(st Store) *Service {
	return NewService(Options{
		Store:     st,
		MockDelay: time.Millisecond,
		Timezone:  time.UTC,
		NewID:     fixedID,
	})
}

func TestServiceLoadFromStore(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := newTestService(st)

	state, _ := svc.State()
	assert.Equal(t, StateIdle, state)

	require.NoError(t, svc.Load(context.Background()))

	state, err := svc.State()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, err)

	snap, ok := svc.Snapshot()
	require.True(t, ok)
	assert.Len(t, snap.People, 4)
}

func TestServiceLoadFailsWholeOnSingleCollectionError(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := newTestService(st)
	require.NoError(t, svc.Load(context.Background()))

	// Second load fails one collection: the whole load fails, the previous
	// snapshot stays available.
	st.failChecks = true
	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)

	state, stateErr := svc.State()
	assert.Equal(t, StateError, state)
	assert.Error(t, stateErr)

	snap, ok := svc.Snapshot()
	assert.True(t, ok, "stale snapshot should be retained")
	assert.Len(t, snap.People, 4)
}

func TestServiceLoadSessionRequired(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := NewService(Options{
		Store:          st,
		RequireSession: true,
		Timezone:       time.UTC,
	})

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrSessionRequired)

	// Session errors clear any data.
	_, ok := svc.Snapshot()
	assert.False(t, ok)
}

func TestServiceLoadSessionTokenSatisfiesGate(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := NewService(Options{
		Store:          st,
		RequireSession: true,
		SessionToken:   "session-token",
		Timezone:       time.UTC,
	})

	require.NoError(t, svc.Load(context.Background()))
	_, ok := svc.Snapshot()
	assert.True(t, ok)
}

func TestServiceMockFallbackOutsideProduction(t *testing.T) {
	svc := NewService(Options{MockDelay: time.Millisecond, Timezone: time.UTC})

	require.NoError(t, svc.Load(context.Background()))

	snap, ok := svc.Snapshot()
	require.True(t, ok)
	assert.NotEmpty(t, snap.People)
	assert.NotEmpty(t, snap.RoutineTemplates)
}

func TestServiceNoMockFallbackInProduction(t *testing.T) {
	svc := NewService(Options{Production: true, Timezone: time.UTC})

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)

	state, _ := svc.State()
	assert.Equal(t, StateError, state)
	_, ok := svc.Snapshot()
	assert.False(t, ok)
}

func TestServiceToggleWritesThenReflects(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := newTestService(st)
	require.NoError(t, svc.Load(context.Background()))

	templateID := st.snap.RoutineTemplates[0].ID

	completed, err := svc.Toggle(context.Background(), templateID, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, completed)

	require.Len(t, st.upserted, 1)
	assert.Equal(t, templateID, st.upserted[0].TemplateID)
	assert.Equal(t, "2024-01-01", st.upserted[0].Date)
	assert.True(t, st.upserted[0].Completed)

	snap, _ := svc.Snapshot()
	check, ok := FindRoutineCheck(snap.RoutineChecks, templateID, "2024-01-01")
	require.True(t, ok)
	assert.True(t, check.Completed)

	// Toggling again flips it off.
	completed, err = svc.Toggle(context.Background(), templateID, "2024-01-01")
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestServiceToggleRejectionLeavesStateAndReportsPrior(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := newTestService(st)
	require.NoError(t, svc.Load(context.Background()))

	templateID := st.snap.RoutineTemplates[0].ID
	st.failUpsert = true

	completed, err := svc.Toggle(context.Background(), templateID, "2024-01-01")
	require.Error(t, err)
	// The check did not exist, so the prior (and still effective) value is
	// not-completed.
	assert.False(t, completed)

	snap, _ := svc.Snapshot()
	_, ok := FindRoutineCheck(snap.RoutineChecks, templateID, "2024-01-01")
	assert.False(t, ok, "local state must not change on write rejection")
}

func TestServiceToggleLocalOnlyWithoutStore(t *testing.T) {
	svc := NewService(Options{MockDelay: time.Millisecond, Timezone: time.UTC, NewID: fixedID})
	require.NoError(t, svc.Load(context.Background()))

	snap, _ := svc.Snapshot()
	templateID := snap.RoutineTemplates[0].ID

	completed, err := svc.Toggle(context.Background(), templateID, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, completed)

	snap, _ = svc.Snapshot()
	check, ok := FindRoutineCheck(snap.RoutineChecks, templateID, "2024-01-01")
	require.True(t, ok)
	assert.Equal(t, toggleNewID, check.ID)
}

func TestServiceViewDerivesFilteredProjection(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot()}
	svc := NewService(Options{
		Store:        st,
		Timezone:     time.UTC,
		WeekStartDay: time.Sunday,
		Now:          func() time.Time { return time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, svc.Load(context.Background()))

	view := svc.View(ViewOptions{VisitMode: true})

	assert.Equal(t, StateReady, view.State)
	assert.True(t, view.VisitMode)
	assert.Equal(t, "2024-02-14", view.TodayKey)
	assert.Equal(t, "2024-02-11", view.WeekStart.Format("2006-01-02"))
	require.Len(t, view.Week, 7)

	// The private therapy entry is filtered out before projection.
	for _, bucket := range view.Week {
		for _, item := range bucket.Items {
			assert.NotEqual(t, "Therapy", item.Title)
		}
	}

	// The private guest is masked but still present.
	var maskedSeen bool
	for _, p := range view.Snapshot.People {
		if p.Name == MaskedPersonName {
			maskedSeen = true
		}
	}
	assert.True(t, maskedSeen)
}

func TestServiceRefreshRecovers(t *testing.T) {
	st := &fakeStore{snap: MockSnapshot(), failChecks: true}
	svc := newTestService(st)

	require.Error(t, svc.Load(context.Background()))

	st.failChecks = false
	require.NoError(t, svc.Refresh(context.Background()))

	state, err := svc.State()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, err)
}
