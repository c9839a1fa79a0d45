package models

import (
	"github.com/google/uuid"
)

// Replenish urgencies
const (
	UrgencyNow  = "now"
	UrgencySoon = "soon"
)

// ReplenishItem is an entry on the household replenishment list
type ReplenishItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Urgency   string    `json:"urgency" db:"urgency"`
	Active    bool      `json:"active" db:"active"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
}

// ReplenishItemCreateRequest is the request body for POST /api/admin/replenish-items
type ReplenishItemCreateRequest struct {
	Title     string `json:"title" binding:"required"`
	Urgency   string `json:"urgency" binding:"omitempty,oneof=now soon"`
	Active    *bool  `json:"active,omitempty"`
	IsPrivate bool   `json:"is_private"`
}

// ReplenishItemUpdateRequest is the request body for PATCH /api/admin/replenish-items/:id
type ReplenishItemUpdateRequest struct {
	Title     *string `json:"title,omitempty"`
	Urgency   *string `json:"urgency,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	IsPrivate *bool   `json:"is_private,omitempty"`
}
