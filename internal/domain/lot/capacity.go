package lot

import (
	"fmt"
	"sort"
)

// PlanGrow returns count new spot numbers, taking the lowest positive
// integers missing from existing first and continuing upward after that.
// existing may be unsorted and may contain duplicates.
func PlanGrow(existing []int, count int) []int {
	if count <= 0 {
		return nil
	}

	taken := make([]int, 0, len(existing))
	for _, n := range existing {
		if n > 0 {
			taken = append(taken, n)
		}
	}
	sort.Ints(taken)

	out := make([]int, 0, count)
	candidate := 1
	i := 0
	for len(out) < count {
		for i < len(taken) && taken[i] < candidate {
			i++
		}
		if i < len(taken) && taken[i] == candidate {
			candidate++
			continue
		}
		out = append(out, candidate)
		candidate++
	}
	return out
}

// ResizePlan is the structural change needed to move a lot to a new capacity.
// At most one of Grow and Shrink is non-zero.
type ResizePlan struct {
	OldMax int
	NewMax int
	Grow   int
	Shrink int
}

func (p ResizePlan) IsNoop() bool {
	return p.Grow == 0 && p.Shrink == 0
}

// ShrinkError reports a shrink that would need more free spots than exist.
type ShrinkError struct {
	Requested   int
	Reclaimable int
}

func (e *ShrinkError) Error() string {
	return fmt.Sprintf("cannot remove %d spots: only %d are available, %d are occupied",
		e.Requested, e.Reclaimable, e.Requested-e.Reclaimable)
}

func (e *ShrinkError) Occupied() int {
	return e.Requested - e.Reclaimable
}
