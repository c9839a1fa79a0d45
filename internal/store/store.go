package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/config"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

var ErrNotFound = errors.New("record not found")

// PGStore is the Postgres-backed table store behind the dashboard: select-all
// per collection for the snapshot fetch, the keyed routine-check upsert, and
// the admin CRUD surface.
type PGStore struct {
	pool *pgxpool.Pool
}

// New connects a PGStore using the configured pool settings
func New(ctx context.Context, cfg config.DatabaseConfig) (*PGStore, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PGStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PGStore) Close() {
	s.pool.Close()
}

// Health checks if the database is reachable
func (s *PGStore) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// People returns all household members ordered for display
func (s *PGStore) People(ctx context.Context) ([]models.Person, error) {
	query := `
		SELECT id, name, color, person_type, is_private, sort_order
		FROM people
		ORDER BY sort_order NULLS LAST, name
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.Type, &p.IsPrivate, &p.SortOrder); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// RecurringItems returns all weekly-repeating calendar entries
func (s *PGStore) RecurringItems(ctx context.Context) ([]models.RecurringItem, error) {
	query := `
		SELECT id, title, COALESCE(day_of_week, 1), COALESCE(time_text, ''),
		       person_id, COALESCE(color, ''), COALESCE(is_private, false)
		FROM recurring_items
		ORDER BY day_of_week, time_text, title
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.RecurringItem{}
	for rows.Next() {
		var it models.RecurringItem
		if err := rows.Scan(&it.ID, &it.Title, &it.DayOfWeek, &it.TimeText, &it.PersonID, &it.Color, &it.IsPrivate); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// OneOffItems returns all dated calendar entries
func (s *PGStore) OneOffItems(ctx context.Context) ([]models.OneOffItem, error) {
	query := `
		SELECT id, title, to_char(event_date, 'YYYY-MM-DD'), COALESCE(time_text, ''),
		       person_id, COALESCE(color, ''), COALESCE(is_private, false)
		FROM oneoff_items
		ORDER BY event_date, time_text, title
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OneOffItem{}
	for rows.Next() {
		var it models.OneOffItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Date, &it.TimeText, &it.PersonID, &it.Color, &it.IsPrivate); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ReplenishItems returns all active replenishment entries
func (s *PGStore) ReplenishItems(ctx context.Context) ([]models.ReplenishItem, error) {
	query := `
		SELECT id, title, urgency, active, COALESCE(is_private, false)
		FROM replenish_items
		WHERE active = true
		ORDER BY urgency, title
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.ReplenishItem{}
	for rows.Next() {
		var it models.ReplenishItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Urgency, &it.Active, &it.IsPrivate); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// RoutineTemplates returns all active routine checklist definitions
func (s *PGStore) RoutineTemplates(ctx context.Context) ([]models.RoutineTemplate, error) {
	query := `
		SELECT id, person_id, title, active, COALESCE(is_private, false)
		FROM routine_templates
		WHERE active = true
		ORDER BY title
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []models.RoutineTemplate{}
	for rows.Next() {
		var t models.RoutineTemplate
		if err := rows.Scan(&t.ID, &t.PersonID, &t.Title, &t.Active, &t.IsPrivate); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// RoutineChecks returns all per-day completion records
func (s *PGStore) RoutineChecks(ctx context.Context) ([]models.RoutineCheck, error) {
	query := `
		SELECT id, template_id, to_char(check_date, 'YYYY-MM-DD'), completed
		FROM routine_checks
		ORDER BY check_date DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := []models.RoutineCheck{}
	for rows.Next() {
		var c models.RoutineCheck
		if err := rows.Scan(&c.ID, &c.TemplateID, &c.Date, &c.Completed); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// WeeklyFocus returns all weekly-focus records
func (s *PGStore) WeeklyFocus(ctx context.Context) ([]models.WeeklyFocus, error) {
	query := `
		SELECT id, focus_text, reference, active
		FROM weekly_focus
		ORDER BY active DESC, focus_text
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	focuses := []models.WeeklyFocus{}
	for rows.Next() {
		var f models.WeeklyFocus
		if err := rows.Scan(&f.ID, &f.Text, &f.Reference, &f.Active); err != nil {
			return nil, err
		}
		focuses = append(focuses, f)
	}
	return focuses, rows.Err()
}

// HomeschoolNotes returns all homeschool notes, newest first
func (s *PGStore) HomeschoolNotes(ctx context.Context) ([]models.HomeschoolNote, error) {
	query := `
		SELECT id, person_id, topics, created_at, COALESCE(is_private, false)
		FROM homeschool_notes
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.HomeschoolNote{}
	for rows.Next() {
		var n models.HomeschoolNote
		if err := rows.Scan(&n.ID, &n.PersonID, &n.Topics, &n.CreatedAt, &n.IsPrivate); err != nil {
			return nil, err
		}
		if n.Topics == nil {
			n.Topics = []string{}
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Settings returns the singleton settings record; a missing row yields the
// zero value (visit mode off)
func (s *PGStore) Settings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := s.pool.QueryRow(ctx, `SELECT visit_mode FROM dashboard_settings LIMIT 1`).Scan(&settings.VisitMode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Settings{}, nil
		}
		return models.Settings{}, err
	}
	return settings, nil
}

// UpdateSettings writes the singleton settings record
func (s *PGStore) UpdateSettings(ctx context.Context, settings models.Settings) error {
	query := `
		INSERT INTO dashboard_settings (id, visit_mode, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET visit_mode = EXCLUDED.visit_mode, updated_at = NOW()
	`
	_, err := s.pool.Exec(ctx, query, settings.VisitMode)
	return err
}

// UpsertRoutineCheck writes a completion record keyed by (template_id,
// check_date), mirroring the reducer's one-check-per-day invariant
func (s *PGStore) UpsertRoutineCheck(ctx context.Context, check models.RoutineCheck) error {
	query := `
		INSERT INTO routine_checks (id, template_id, check_date, completed, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (template_id, check_date)
		DO UPDATE SET completed = EXCLUDED.completed, updated_at = NOW()
	`
	_, err := s.pool.Exec(ctx, query, check.ID, check.TemplateID, check.Date, check.Completed)
	return err
}
