package models

import (
	"github.com/google/uuid"
)

// Person types
const (
	PersonTypeKid   = "kid"
	PersonTypeAdult = "adult"
	PersonTypeGuest = "guest"
)

// Person represents a household member shown on the dashboard
type Person struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Type      string    `json:"type" db:"person_type"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
	SortOrder *int      `json:"sort_order,omitempty" db:"sort_order"`
}

// PersonCreateRequest is the request body for POST /api/admin/people
type PersonCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	Color     string `json:"color"`
	Type      string `json:"type"`
	IsPrivate bool   `json:"is_private"`
	SortOrder *int   `json:"sort_order,omitempty"`
}

// PersonUpdateRequest is the request body for PATCH /api/admin/people/:id
type PersonUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	Color     *string `json:"color,omitempty"`
	Type      *string `json:"type,omitempty"`
	IsPrivate *bool   `json:"is_private,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
