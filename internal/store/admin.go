package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// Admin CRUD. Every write here is followed by a dashboard service refresh in
// the handler layer; the store never touches the in-memory snapshot.

// CreatePerson inserts a household member and returns it with its new id
func (s *PGStore) CreatePerson(ctx context.Context, req models.PersonCreateRequest) (*models.Person, error) {
	p := models.Person{
		ID:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		Type:      req.Type,
		IsPrivate: req.IsPrivate,
		SortOrder: req.SortOrder,
	}
	if p.Type == "" {
		p.Type = models.PersonTypeKid
	}

	query := `
		INSERT INTO people (id, name, color, person_type, is_private, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := s.pool.Exec(ctx, query, p.ID, p.Name, p.Color, p.Type, p.IsPrivate, p.SortOrder); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePerson applies the non-nil fields of req
func (s *PGStore) UpdatePerson(ctx context.Context, id uuid.UUID, req models.PersonUpdateRequest) error {
	b := newUpdateBuilder("people")
	b.set("name", req.Name)
	b.set("color", req.Color)
	b.set("person_type", req.Type)
	b.set("is_private", req.IsPrivate)
	b.set("sort_order", req.SortOrder)
	return b.exec(ctx, s, id)
}

// DeletePerson removes a household member
func (s *PGStore) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "people", id)
}

// CreateRecurringItem inserts a weekly calendar entry
func (s *PGStore) CreateRecurringItem(ctx context.Context, req models.RecurringItemCreateRequest) (*models.RecurringItem, error) {
	it := models.RecurringItem{
		ID:        uuid.New(),
		Title:     req.Title,
		DayOfWeek: req.DayOfWeek,
		TimeText:  req.TimeText,
		PersonID:  req.PersonID,
		IsPrivate: req.IsPrivate,
	}

	query := `
		INSERT INTO recurring_items (id, title, day_of_week, time_text, person_id, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := s.pool.Exec(ctx, query, it.ID, it.Title, it.DayOfWeek, it.TimeText, it.PersonID, it.IsPrivate); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateRecurringItem applies the non-nil fields of req
func (s *PGStore) UpdateRecurringItem(ctx context.Context, id uuid.UUID, req models.RecurringItemUpdateRequest) error {
	b := newUpdateBuilder("recurring_items")
	b.set("title", req.Title)
	b.set("day_of_week", req.DayOfWeek)
	b.set("time_text", req.TimeText)
	b.set("person_id", req.PersonID)
	b.set("is_private", req.IsPrivate)
	return b.exec(ctx, s, id)
}

// DeleteRecurringItem removes a weekly calendar entry
func (s *PGStore) DeleteRecurringItem(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "recurring_items", id)
}

// CreateOneOffItem inserts a dated calendar entry
func (s *PGStore) CreateOneOffItem(ctx context.Context, req models.OneOffItemCreateRequest) (*models.OneOffItem, error) {
	it := models.OneOffItem{
		ID:        uuid.New(),
		Title:     req.Title,
		Date:      req.Date,
		TimeText:  req.TimeText,
		PersonID:  req.PersonID,
		IsPrivate: req.IsPrivate,
	}

	query := `
		INSERT INTO oneoff_items (id, title, event_date, time_text, person_id, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := s.pool.Exec(ctx, query, it.ID, it.Title, it.Date, it.TimeText, it.PersonID, it.IsPrivate); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateOneOffItem applies the non-nil fields of req
func (s *PGStore) UpdateOneOffItem(ctx context.Context, id uuid.UUID, req models.OneOffItemUpdateRequest) error {
	b := newUpdateBuilder("oneoff_items")
	b.set("title", req.Title)
	b.set("event_date", req.Date)
	b.set("time_text", req.TimeText)
	b.set("person_id", req.PersonID)
	b.set("is_private", req.IsPrivate)
	return b.exec(ctx, s, id)
}

// DeleteOneOffItem removes a dated calendar entry
func (s *PGStore) DeleteOneOffItem(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "oneoff_items", id)
}

// CreateReplenishItem inserts a replenishment entry
func (s *PGStore) CreateReplenishItem(ctx context.Context, req models.ReplenishItemCreateRequest) (*models.ReplenishItem, error) {
	it := models.ReplenishItem{
		ID:        uuid.New(),
		Title:     req.Title,
		Urgency:   req.Urgency,
		Active:    true,
		IsPrivate: req.IsPrivate,
	}
	if it.Urgency == "" {
		it.Urgency = models.UrgencySoon
	}
	if req.Active != nil {
		it.Active = *req.Active
	}

	query := `
		INSERT INTO replenish_items (id, title, urgency, active, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := s.pool.Exec(ctx, query, it.ID, it.Title, it.Urgency, it.Active, it.IsPrivate); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateReplenishItem applies the non-nil fields of req
func (s *PGStore) UpdateReplenishItem(ctx context.Context, id uuid.UUID, req models.ReplenishItemUpdateRequest) error {
	b := newUpdateBuilder("replenish_items")
	b.set("title", req.Title)
	b.set("urgency", req.Urgency)
	b.set("active", req.Active)
	b.set("is_private", req.IsPrivate)
	return b.exec(ctx, s, id)
}

// DeleteReplenishItem removes a replenishment entry
func (s *PGStore) DeleteReplenishItem(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "replenish_items", id)
}

// CreateRoutineTemplate inserts a routine checklist definition
func (s *PGStore) CreateRoutineTemplate(ctx context.Context, req models.RoutineTemplateCreateRequest) (*models.RoutineTemplate, error) {
	t := models.RoutineTemplate{
		ID:        uuid.New(),
		PersonID:  req.PersonID,
		Title:     req.Title,
		Active:    true,
		IsPrivate: req.IsPrivate,
	}
	if req.Active != nil {
		t.Active = *req.Active
	}

	query := `
		INSERT INTO routine_templates (id, person_id, title, active, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := s.pool.Exec(ctx, query, t.ID, t.PersonID, t.Title, t.Active, t.IsPrivate); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateRoutineTemplate applies the non-nil fields of req
func (s *PGStore) UpdateRoutineTemplate(ctx context.Context, id uuid.UUID, req models.RoutineTemplateUpdateRequest) error {
	b := newUpdateBuilder("routine_templates")
	b.set("person_id", req.PersonID)
	b.set("title", req.Title)
	b.set("active", req.Active)
	b.set("is_private", req.IsPrivate)
	return b.exec(ctx, s, id)
}

// DeleteRoutineTemplate removes a routine definition and its checks
func (s *PGStore) DeleteRoutineTemplate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM routine_checks WHERE template_id = $1`, id); err != nil {
		return err
	}
	return s.deleteByID(ctx, "routine_templates", id)
}

// CreateHomeschoolNote inserts a homeschool note
func (s *PGStore) CreateHomeschoolNote(ctx context.Context, req models.HomeschoolNoteCreateRequest) (*models.HomeschoolNote, error) {
	n := models.HomeschoolNote{
		ID:        uuid.New(),
		PersonID:  req.PersonID,
		Topics:    req.Topics,
		IsPrivate: req.IsPrivate,
	}

	query := `
		INSERT INTO homeschool_notes (id, person_id, topics, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at
	`
	if err := s.pool.QueryRow(ctx, query, n.ID, n.PersonID, n.Topics, n.IsPrivate).Scan(&n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateHomeschoolNote applies the non-nil fields of req
func (s *PGStore) UpdateHomeschoolNote(ctx context.Context, id uuid.UUID, req models.HomeschoolNoteUpdateRequest) error {
	b := newUpdateBuilder("homeschool_notes")
	b.set("person_id", req.PersonID)
	if req.Topics != nil {
		b.set("topics", req.Topics)
	}
	b.set("is_private", req.IsPrivate)
	return b.exec(ctx, s, id)
}

// DeleteHomeschoolNote removes a homeschool note
func (s *PGStore) DeleteHomeschoolNote(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "homeschool_notes", id)
}

// SetWeeklyFocus activates a new focus. All other records are deactivated in
// the same transaction so at most one focus is ever active.
func (s *PGStore) SetWeeklyFocus(ctx context.Context, req models.WeeklyFocusSetRequest) (*models.WeeklyFocus, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE weekly_focus SET active = false WHERE active = true`); err != nil {
		return nil, err
	}

	f := models.WeeklyFocus{
		ID:        uuid.New(),
		Text:      req.Text,
		Reference: req.Reference,
		Active:    true,
	}
	query := `
		INSERT INTO weekly_focus (id, focus_text, reference, active, created_at)
		VALUES ($1, $2, $3, true, NOW())
	`
	if _, err := tx.Exec(ctx, query, f.ID, f.Text, f.Reference); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *PGStore) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// updateBuilder accumulates SET clauses for pointer-optional PATCH requests
type updateBuilder struct {
	table   string
	clauses []string
	args    []any
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

func (b *updateBuilder) set(column string, value any) {
	if isNilPointer(value) {
		return
	}
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) exec(ctx context.Context, s *PGStore, id uuid.UUID) error {
	if len(b.clauses) == 0 {
		return nil
	}
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d",
		b.table, strings.Join(b.clauses, ", "), len(b.args),
	)

	result, err := s.pool.Exec(ctx, query, b.args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isNilPointer(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
