package models

import (
	"github.com/google/uuid"
)

// Snapshot is the full set of dashboard collections as fetched in one load.
// The dashboard service owns the authoritative copy; derived views (privacy
// filtering, week projection) are recomputed from it and never stored.
type Snapshot struct {
	People           []Person          `json:"people"`
	RecurringItems   []RecurringItem   `json:"recurring_items"`
	OneOffItems      []OneOffItem      `json:"oneoff_items"`
	ReplenishItems   []ReplenishItem   `json:"replenish_items"`
	RoutineTemplates []RoutineTemplate `json:"routine_templates"`
	RoutineChecks    []RoutineCheck    `json:"routine_checks"`
	WeeklyFocus      []WeeklyFocus     `json:"weekly_focus"`
	HomeschoolNotes  []HomeschoolNote  `json:"homeschool_notes"`
	Settings         Settings          `json:"settings"`
}

// PersonIndex builds an id lookup over the snapshot's people
func (s Snapshot) PersonIndex() map[uuid.UUID]Person {
	idx := make(map[uuid.UUID]Person, len(s.People))
	for _, p := range s.People {
		idx[p.ID] = p
	}
	return idx
}

// ActiveFocus returns the active weekly focus, or nil when none is set
func (s Snapshot) ActiveFocus() *WeeklyFocus {
	for i := range s.WeeklyFocus {
		if s.WeeklyFocus[i].Active {
			return &s.WeeklyFocus[i]
		}
	}
	return nil
}
