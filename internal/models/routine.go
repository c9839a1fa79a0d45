package models

import (
	"github.com/google/uuid"
)

// RoutineTemplate defines a recurring daily checklist item for a kid
type RoutineTemplate struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PersonID  uuid.UUID `json:"person_id" db:"person_id"`
	Title     string    `json:"title" db:"title"`
	Active    bool      `json:"active" db:"active"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
}

// RoutineCheck is the per-day completion record for a template.
// At most one check exists per (TemplateID, Date) pair; Date is a
// YYYY-MM-DD key in the family timezone.
type RoutineCheck struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TemplateID uuid.UUID `json:"template_id" db:"template_id"`
	Date       string    `json:"date" db:"check_date"`
	Completed  bool      `json:"completed" db:"completed"`
}

// RoutineTemplateCreateRequest is the request body for POST /api/admin/routine-templates
type RoutineTemplateCreateRequest struct {
	PersonID  uuid.UUID `json:"person_id" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	Active    *bool     `json:"active,omitempty"`
	IsPrivate bool      `json:"is_private"`
}

// RoutineTemplateUpdateRequest is the request body for PATCH /api/admin/routine-templates/:id
type RoutineTemplateUpdateRequest struct {
	PersonID  *uuid.UUID `json:"person_id,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Active    *bool      `json:"active,omitempty"`
	IsPrivate *bool      `json:"is_private,omitempty"`
}

// RoutineToggleRequest is the request body for POST /api/routines/:id/toggle
type RoutineToggleRequest struct {
	Date string `json:"date" binding:"required"`
}

// RoutineToggleResponse reports the effective completion state after a toggle.
// Completed reflects what actually holds: the new value on success, the
// prior value when persistence was rejected.
type RoutineToggleResponse struct {
	TemplateID uuid.UUID `json:"template_id"`
	Date       string    `json:"date"`
	Completed  bool      `json:"completed"`
}
