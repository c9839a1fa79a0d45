package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleWithOverflow(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	visible, overflow := VisibleWithOverflow(items, 5)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, visible)
	assert.Equal(t, 1, overflow)

	visible, overflow = VisibleWithOverflow([]string{"a", "b"}, 5)
	assert.Equal(t, []string{"a", "b"}, visible)
	assert.Equal(t, 0, overflow)
}

func TestVisibleWithOverflowEdges(t *testing.T) {
	visible, overflow := VisibleWithOverflow([]int{1, 2, 3}, 0)
	assert.Empty(t, visible)
	assert.Equal(t, 3, overflow)

	visible, overflow = VisibleWithOverflow([]int{1, 2, 3}, -2)
	assert.Empty(t, visible)
	assert.Equal(t, 3, overflow)

	visible, overflow = VisibleWithOverflow([]int(nil), 4)
	assert.Empty(t, visible)
	assert.Equal(t, 0, overflow)
}

func TestVisibleWithOverflowDoesNotMutate(t *testing.T) {
	items := []string{"a", "b", "c"}
	VisibleWithOverflow(items, 1)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}
