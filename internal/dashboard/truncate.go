package dashboard

// VisibleWithOverflow splits items into the first limit elements and the
// count of elements beyond that limit, clamped to zero. The input slice is
// never mutated; the visible prefix shares its backing array.
func VisibleWithOverflow[T any](items []T, limit int) (visible []T, overflow int) {
	if limit < 0 {
		limit = 0
	}
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}
