package core

import "fmt"

// ChangeKind discriminates view change operations.
type ChangeKind string

const (
	ChangeRemoved  ChangeKind = "REMOVED"
	ChangeInserted ChangeKind = "INSERTED"
	ChangeChanged  ChangeKind = "CHANGED"
)

// Change describes a contiguous index range affected by a view transition.
// Removed ranges are indexed against the previous view; inserted ranges
// against the partially updated sequence after removals.
type Change struct {
	Kind  ChangeKind
	Index int
	Count int
}

func (c Change) String() string {
	return fmt.Sprintf("%s(%d,%d)", c.Kind, c.Index, c.Count)
}

// Reconcile computes the change operations between two successive derived
// views.
//
// This is a size-based approximation, not an element-level diff: only the
// lengths are compared and the overlapping prefix is marked as changed.
// Applying the operations in order to a copy of previous always yields a
// sequence of next's length, but rows inside a Changed range may be
// reported dirty even when their content is identical. A consumer that
// needs a minimal edit script can substitute a true longest-common-
// subsequence diff without affecting the displayed result.
func Reconcile(previous, next []Recipe) []Change {
	oldSize := len(previous)
	newSize := len(next)

	var ops []Change
	switch {
	case oldSize > newSize:
		ops = append(ops, Change{Kind: ChangeRemoved, Index: newSize, Count: oldSize - newSize})
		if newSize > 0 {
			ops = append(ops, Change{Kind: ChangeChanged, Index: 0, Count: newSize})
		}
	case oldSize < newSize:
		if oldSize > 0 {
			ops = append(ops, Change{Kind: ChangeChanged, Index: 0, Count: oldSize})
		}
		ops = append(ops, Change{Kind: ChangeInserted, Index: oldSize, Count: newSize - oldSize})
	default:
		if newSize > 0 {
			ops = append(ops, Change{Kind: ChangeChanged, Index: 0, Count: newSize})
		}
	}
	return ops
}

// ChangeSet is emitted after every operation that recomputes the derived
// view. Size is the length of the new view.
type ChangeSet struct {
	Changes []Change
	Size    int
}

// String implements lifecycle.Event so change sets can feed a
// lifecycle.Source (see pkg/adapters/lifecycle).
func (cs ChangeSet) String() string {
	return fmt.Sprintf("view update: %d change(s), %d row(s)", len(cs.Changes), cs.Size)
}
