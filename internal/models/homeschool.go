package models

import (
	"time"

	"github.com/google/uuid"
)

// HomeschoolNote records what a kid worked on: an ordered list of topics
type HomeschoolNote struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PersonID  uuid.UUID `json:"person_id" db:"person_id"`
	Topics    []string  `json:"topics" db:"topics"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	IsPrivate bool      `json:"is_private" db:"is_private"`
}

// HomeschoolNoteCreateRequest is the request body for POST /api/admin/homeschool-notes
type HomeschoolNoteCreateRequest struct {
	PersonID  uuid.UUID `json:"person_id" binding:"required"`
	Topics    []string  `json:"topics" binding:"required"`
	IsPrivate bool      `json:"is_private"`
}

// HomeschoolNoteUpdateRequest is the request body for PATCH /api/admin/homeschool-notes/:id
type HomeschoolNoteUpdateRequest struct {
	PersonID  *uuid.UUID `json:"person_id,omitempty"`
	Topics    []string   `json:"topics,omitempty"`
	IsPrivate *bool      `json:"is_private,omitempty"`
}
