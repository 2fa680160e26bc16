package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cookbook/pkg/core"
)

func recipes(n int) []core.Recipe {
	out := make([]core.Recipe, n)
	for i := range out {
		out[i] = core.Recipe{ID: fmt.Sprintf("r%d", i), Title: fmt.Sprintf("Recipe %d", i)}
	}
	return out
}

// applyChanges replays the emitted operations against a copy of previous
// and returns the resulting sequence length.
func applyChanges(previous []core.Recipe, ops []core.Change) int {
	length := len(previous)
	for _, op := range ops {
		switch op.Kind {
		case core.ChangeRemoved:
			length -= op.Count
		case core.ChangeInserted:
			length += op.Count
		case core.ChangeChanged:
			// Content refresh, no length change.
		}
	}
	return length
}

func TestReconcile_Shrink(t *testing.T) {
	ops := core.Reconcile(recipes(5), recipes(3))

	require.Len(t, ops, 2)
	assert.Equal(t, core.Change{Kind: core.ChangeRemoved, Index: 3, Count: 2}, ops[0])
	assert.Equal(t, core.Change{Kind: core.ChangeChanged, Index: 0, Count: 3}, ops[1])
}

func TestReconcile_ShrinkToEmpty(t *testing.T) {
	ops := core.Reconcile(recipes(2), nil)

	require.Len(t, ops, 1)
	assert.Equal(t, core.Change{Kind: core.ChangeRemoved, Index: 0, Count: 2}, ops[0])
}

func TestReconcile_Grow(t *testing.T) {
	ops := core.Reconcile(recipes(2), recipes(5))

	require.Len(t, ops, 2)
	assert.Equal(t, core.Change{Kind: core.ChangeChanged, Index: 0, Count: 2}, ops[0])
	assert.Equal(t, core.Change{Kind: core.ChangeInserted, Index: 2, Count: 3}, ops[1])
}

func TestReconcile_GrowFromEmpty(t *testing.T) {
	ops := core.Reconcile(nil, recipes(3))

	require.Len(t, ops, 1)
	assert.Equal(t, core.Change{Kind: core.ChangeInserted, Index: 0, Count: 3}, ops[0])
}

func TestReconcile_SameSize(t *testing.T) {
	ops := core.Reconcile(recipes(4), recipes(4))

	require.Len(t, ops, 1)
	assert.Equal(t, core.Change{Kind: core.ChangeChanged, Index: 0, Count: 4}, ops[0])
}

func TestReconcile_BothEmpty(t *testing.T) {
	assert.Empty(t, core.Reconcile(nil, nil))
}

// Applying the emitted operations to the previous view must always yield a
// sequence of next's length, whatever the transition.
func TestReconcile_LengthProperty(t *testing.T) {
	for oldSize := 0; oldSize <= 6; oldSize++ {
		for newSize := 0; newSize <= 6; newSize++ {
			previous := recipes(oldSize)
			next := recipes(newSize)

			ops := core.Reconcile(previous, next)
			got := applyChanges(previous, ops)

			assert.Equal(t, len(next), got, "old=%d new=%d", oldSize, newSize)
		}
	}
}
