package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dates"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// State is the service's load state
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Store is the table-store capability the service depends on: select-all per
// collection plus the keyed routine-check upsert. Admin CRUD lives on the
// concrete store; the service never needs it.
type Store interface {
	People(ctx context.Context) ([]models.Person, error)
	RecurringItems(ctx context.Context) ([]models.RecurringItem, error)
	OneOffItems(ctx context.Context) ([]models.OneOffItem, error)
	ReplenishItems(ctx context.Context) ([]models.ReplenishItem, error)
	RoutineTemplates(ctx context.Context) ([]models.RoutineTemplate, error)
	RoutineChecks(ctx context.Context) ([]models.RoutineCheck, error)
	WeeklyFocus(ctx context.Context) ([]models.WeeklyFocus, error)
	HomeschoolNotes(ctx context.Context) ([]models.HomeschoolNote, error)
	Settings(ctx context.Context) (models.Settings, error)
	UpsertRoutineCheck(ctx context.Context, check models.RoutineCheck) error
}

// Options configures a Service explicitly; there are no ambient globals.
type Options struct {
	// Store is the configured backend; nil means not configured.
	Store Store
	// Production disables the mock fallback when no store is configured.
	Production bool
	// MockDelay is the artificial latency before serving mock data, to
	// exercise loading states. Defaults to 400ms.
	MockDelay time.Duration
	// RequireSession makes loads fail with ErrSessionRequired when
	// SessionToken is empty.
	RequireSession bool
	SessionToken   string

	// Timezone is the family timezone; routine date keys and the week grid
	// are computed in it. Defaults to UTC.
	Timezone *time.Location
	// WeekStartDay anchors the displayed week. Defaults to Sunday.
	WeekStartDay time.Weekday

	// NewID generates ids for synthesized routine checks. Defaults to
	// uuid.New; tests inject a fixed generator.
	NewID func() uuid.UUID
	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Service owns the authoritative in-memory snapshot of all dashboard
// collections for its lifetime. Derived views are recomputed from it on
// demand; admin writes go through the store and trigger a Refresh rather
// than an incremental merge.
type Service struct {
	opts Options

	mu      sync.Mutex
	state   State
	err     error
	snap    models.Snapshot
	hasData bool
	loadGen uint64
}

// NewService creates an idle service from explicit options
func NewService(opts Options) *Service {
	if opts.MockDelay == 0 {
		opts.MockDelay = 400 * time.Millisecond
	}
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{opts: opts, state: StateIdle}
}

// Load runs one fetch cycle: session gate, then remote fetch, then the
// non-production mock fallback. A fetch error keeps any previous snapshot
// (stale-but-available); a session error clears it. Completions of loads
// that have been superseded by a newer Load are discarded.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.state = StateLoading
	s.err = nil
	s.mu.Unlock()

	if s.opts.RequireSession && s.opts.SessionToken == "" {
		s.fail(gen, ErrSessionRequired, true)
		return ErrSessionRequired
	}

	if s.opts.Store != nil {
		snap, err := s.fetchAll(ctx)
		if err != nil {
			s.opts.Logger.Error("dashboard load failed", "error", err)
			s.fail(gen, err, false)
			return err
		}
		s.commit(gen, snap)
		return nil
	}

	if s.opts.Production {
		s.fail(gen, ErrNotConfigured, false)
		return ErrNotConfigured
	}

	select {
	case <-ctx.Done():
		s.fail(gen, ctx.Err(), false)
		return ctx.Err()
	case <-time.After(s.opts.MockDelay):
	}
	s.opts.Logger.Debug("serving mock dashboard data")
	s.commit(gen, MockSnapshot())
	return nil
}

// Refresh re-runs the fetch path
func (s *Service) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// fetchAll issues every collection request concurrently and fails the whole
// load on the first error; partial data is never committed.
func (s *Service) fetchAll(ctx context.Context) (models.Snapshot, error) {
	var snap models.Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if snap.People, err = s.opts.Store.People(ctx); err != nil {
			return fmt.Errorf("fetch people: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.RecurringItems, err = s.opts.Store.RecurringItems(ctx); err != nil {
			return fmt.Errorf("fetch recurring items: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.OneOffItems, err = s.opts.Store.OneOffItems(ctx); err != nil {
			return fmt.Errorf("fetch oneoff items: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.ReplenishItems, err = s.opts.Store.ReplenishItems(ctx); err != nil {
			return fmt.Errorf("fetch replenish items: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.RoutineTemplates, err = s.opts.Store.RoutineTemplates(ctx); err != nil {
			return fmt.Errorf("fetch routine templates: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.RoutineChecks, err = s.opts.Store.RoutineChecks(ctx); err != nil {
			return fmt.Errorf("fetch routine checks: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.WeeklyFocus, err = s.opts.Store.WeeklyFocus(ctx); err != nil {
			return fmt.Errorf("fetch weekly focus: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.HomeschoolNotes, err = s.opts.Store.HomeschoolNotes(ctx); err != nil {
			return fmt.Errorf("fetch homeschool notes: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.Settings, err = s.opts.Store.Settings(ctx); err != nil {
			return fmt.Errorf("fetch settings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}

func (s *Service) commit(gen uint64, snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return
	}
	s.snap = snap
	s.hasData = true
	s.state = StateReady
	s.err = nil
}

func (s *Service) fail(gen uint64, err error, clear bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen {
		return
	}
	s.state = StateError
	s.err = err
	if clear {
		s.snap = models.Snapshot{}
		s.hasData = false
	}
}

// State returns the load state and its error, if any
func (s *Service) State() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.err
}

// Snapshot returns a copy of the raw snapshot and whether one exists
func (s *Service) Snapshot() (models.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.hasData
}

// Toggle flips (or creates) the routine check for (templateID, dateKey).
// Ordering is write-then-reflect: with a store configured the upsert must
// succeed before local state changes. On rejection the snapshot is left
// untouched and the check's prior completed value is returned alongside the
// error, so callers never report a change that did not persist.
func (s *Service) Toggle(ctx context.Context, templateID uuid.UUID, dateKey string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := ComputeRoutineToggle(s.snap.RoutineChecks, templateID, dateKey, s.opts.NewID)

	if s.opts.Store != nil {
		check, _ := FindRoutineCheck(result.Checks, templateID, dateKey)
		if err := s.opts.Store.UpsertRoutineCheck(ctx, check); err != nil {
			s.opts.Logger.Error("routine toggle write failed",
				"template_id", templateID, "date", dateKey, "error", err)
			return !result.Completed, fmt.Errorf("persist routine check: %w", err)
		}
	}

	s.snap.RoutineChecks = result.Checks
	return result.Completed, nil
}

// ViewOptions selects how the snapshot is projected for display
type ViewOptions struct {
	// VisitMode is the caller's local privacy toggle.
	VisitMode bool
	// Bypass suppresses privacy filtering entirely (authenticated admin).
	Bypass bool
	// WeekOf picks the displayed week; the zero value means the current week.
	WeekOf time.Time
}

// View is the derived, display-ready projection of the snapshot
type View struct {
	State     State           `json:"state"`
	VisitMode bool            `json:"visit_mode"`
	TodayKey  string          `json:"today"`
	WeekStart time.Time       `json:"week_start"`
	Week      []DayBucket     `json:"week"`
	Snapshot  models.Snapshot `json:"snapshot"`
}

// View derives the privacy-filtered snapshot and its 7-day calendar grid.
// Recomputed on every call; nothing derived is persisted.
func (s *Service) View(opts ViewOptions) View {
	s.mu.Lock()
	snap := s.snap
	state := s.state
	s.mu.Unlock()

	loc := s.opts.Timezone
	visible := ApplyVisitMode(snap, PrivacyOptions{VisitMode: opts.VisitMode, Bypass: opts.Bypass})

	weekOf := opts.WeekOf
	if weekOf.IsZero() {
		weekOf = s.opts.Now()
	}
	weekStart := dates.WeekStart(weekOf, s.opts.WeekStartDay, loc)

	return View{
		State:     state,
		VisitMode: visible.Settings.VisitMode,
		TodayKey:  dates.FamilyDateKey(s.opts.Now(), loc),
		WeekStart: weekStart,
		Week:      ProjectWeek(visible.RecurringItems, visible.OneOffItems, visible.PersonIndex(), weekStart, loc),
		Snapshot:  visible,
	}
}

// TodayKey returns the current date key in the family timezone
func (s *Service) TodayKey() string {
	return dates.FamilyDateKey(s.opts.Now(), s.opts.Timezone)
}
