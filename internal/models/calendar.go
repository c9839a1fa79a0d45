package models

import (
	"time"

	"github.com/google/uuid"
)

// RecurringItem is a weekly-repeating calendar entry with no absolute date.
// DayOfWeek uses 1=Sunday through 7=Saturday.
type RecurringItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	DayOfWeek int       `json:"day_of_week" db:"day_of_week"`
	TimeText  string    `json:"time_text" db:"time_text"`
	PersonID  uuid.UUID `json:"person_id" db:"person_id"`
	Color     string    `json:"color,omitempty" db:"color"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
}

// OneOffItem is a calendar entry bound to a specific date (YYYY-MM-DD).
type OneOffItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Date      string    `json:"date" db:"event_date"`
	TimeText  string    `json:"time_text" db:"time_text"`
	PersonID  uuid.UUID `json:"person_id" db:"person_id"`
	Color     string    `json:"color,omitempty" db:"color"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
}

// CalendarItem unifies recurring and one-off entries for rendering.
// It is derived every projection, never persisted.
type CalendarItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	TimeText string    `json:"time_text"`
	Date     time.Time `json:"date"`
	PersonID uuid.UUID `json:"person_id"`
	Color    string    `json:"color"`
}

// RecurringItemCreateRequest is the request body for POST /api/admin/recurring-items
type RecurringItemCreateRequest struct {
	Title     string    `json:"title" binding:"required"`
	DayOfWeek int       `json:"day_of_week" binding:"required,min=1,max=7"`
	TimeText  string    `json:"time_text"`
	PersonID  uuid.UUID `json:"person_id" binding:"required"`
	IsPrivate bool      `json:"is_private"`
}

// RecurringItemUpdateRequest is the request body for PATCH /api/admin/recurring-items/:id
type RecurringItemUpdateRequest struct {
	Title     *string    `json:"title,omitempty"`
	DayOfWeek *int       `json:"day_of_week,omitempty"`
	TimeText  *string    `json:"time_text,omitempty"`
	PersonID  *uuid.UUID `json:"person_id,omitempty"`
	IsPrivate *bool      `json:"is_private,omitempty"`
}

// OneOffItemCreateRequest is the request body for POST /api/admin/oneoff-items
type OneOffItemCreateRequest struct {
	Title     string    `json:"title" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	TimeText  string    `json:"time_text"`
	PersonID  uuid.UUID `json:"person_id" binding:"required"`
	IsPrivate bool      `json:"is_private"`
}

// OneOffItemUpdateRequest is the request body for PATCH /api/admin/oneoff-items/:id
type OneOffItemUpdateRequest struct {
	Title     *string    `json:"title,omitempty"`
	Date      *string    `json:"date,omitempty"`
	TimeText  *string    `json:"time_text,omitempty"`
	PersonID  *uuid.UUID `json:"person_id,omitempty"`
	IsPrivate *bool      `json:"is_private,omitempty"`
}
