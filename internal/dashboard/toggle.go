package dashboard

import (
	"github.com/google/uuid"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// ToggleResult is the outcome of a routine toggle computation
type ToggleResult struct {
	Completed bool
	Checks    []models.RoutineCheck
}

// ComputeRoutineToggle computes the next completion state for a
// (template, date) pair. If a check already exists it is flipped in place in
// a copied collection; otherwise a new completed check is synthesized with an
// id from newID. Pure: the input collection is never mutated, and the caller
// decides whether the result is also persisted.
func ComputeRoutineToggle(checks []models.RoutineCheck, templateID uuid.UUID, dateKey string, newID func() uuid.UUID) ToggleResult {
	for i, check := range checks {
		if check.TemplateID == templateID && check.Date == dateKey {
			next := make([]models.RoutineCheck, len(checks))
			copy(next, checks)
			next[i].Completed = !check.Completed
			return ToggleResult{Completed: next[i].Completed, Checks: next}
		}
	}

	created := models.RoutineCheck{
		ID:         newID(),
		TemplateID: templateID,
		Date:       dateKey,
		Completed:  true,
	}
	next := make([]models.RoutineCheck, 0, len(checks)+1)
	next = append(next, checks...)
	next = append(next, created)
	return ToggleResult{Completed: true, Checks: next}
}

// FindRoutineCheck returns the check for a (template, date) pair, if any
func FindRoutineCheck(checks []models.RoutineCheck, templateID uuid.UUID, dateKey string) (models.RoutineCheck, bool) {
	for _, check := range checks {
		if check.TemplateID == templateID && check.Date == dateKey {
			return check, true
		}
	}
	return models.RoutineCheck{}, false
}
