package dashboard

import (
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/models"
)

// Masking applied to private people while visit mode is active. Ids and
// types are left intact so events and routines still resolve.
const (
	MaskedPersonName  = "Family"
	MaskedPersonColor = "#9ca3af"
)

// PrivacyOptions controls visit-mode filtering of a snapshot
type PrivacyOptions struct {
	// VisitMode is the caller's local toggle.
	VisitMode bool
	// Bypass disables all masking regardless of any visit-mode source.
	// The authenticated admin view sets it.
	Bypass bool
}

// EffectiveVisitMode resolves the three visit-mode sources.
//
//	bypass | local | persisted | result
//	 true  |   *   |     *     | false
//	 false | true  |     *     | true
//	 false | false |   true    | true
//	 false | false |   false   | false
func EffectiveVisitMode(bypass, local, persisted bool) bool {
	if bypass {
		return false
	}
	return local || persisted
}

// ApplyVisitMode derives the visible snapshot. When hiding is effective,
// private people are masked and private records are dropped from every other
// collection; otherwise the snapshot passes through with only the effective
// visit-mode setting updated.
func ApplyVisitMode(snap models.Snapshot, opts PrivacyOptions) models.Snapshot {
	hide := EffectiveVisitMode(opts.Bypass, opts.VisitMode, snap.Settings.VisitMode)

	out := snap
	out.Settings.VisitMode = hide
	if !hide {
		return out
	}

	people := make([]models.Person, len(snap.People))
	for i, p := range snap.People {
		if p.IsPrivate {
			p.Name = MaskedPersonName
			p.Color = MaskedPersonColor
		}
		people[i] = p
	}
	out.People = people

	out.RecurringItems = dropPrivate(snap.RecurringItems, func(r models.RecurringItem) bool { return r.IsPrivate })
	out.OneOffItems = dropPrivate(snap.OneOffItems, func(o models.OneOffItem) bool { return o.IsPrivate })
	out.ReplenishItems = dropPrivate(snap.ReplenishItems, func(r models.ReplenishItem) bool { return r.IsPrivate })
	out.RoutineTemplates = dropPrivate(snap.RoutineTemplates, func(t models.RoutineTemplate) bool { return t.IsPrivate })
	out.HomeschoolNotes = dropPrivate(snap.HomeschoolNotes, func(n models.HomeschoolNote) bool { return n.IsPrivate })

	return out
}

func dropPrivate[T any](items []T, isPrivate func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !isPrivate(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
