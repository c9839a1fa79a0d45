package models

import (
	"github.com/google/uuid"
)

// WeeklyFocus is the family's current focus text. At most one record is
// active at a time; the admin write path deactivates the others first.
type WeeklyFocus struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Text      string    `json:"text" db:"focus_text"`
	Reference *string   `json:"reference,omitempty" db:"reference"`
	Active    bool      `json:"active" db:"active"`
}

// WeeklyFocusSetRequest is the request body for POST /api/admin/weekly-focus
type WeeklyFocusSetRequest struct {
	Text      string  `json:"text" binding:"required"`
	Reference *string `json:"reference,omitempty"`
}
