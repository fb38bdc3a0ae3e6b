package aoc

import (
	"cmp"
	"fmt"
	"slices"
)

// Range is the closed interval [From, To]. From <= To.
type Range struct {
	From, To int
}

// NewRange returns [from, to], or ErrInvalidRange if from > to.
func NewRange(from, to int) (Range, error) {
	if from > to {
		return Range{}, fmt.Errorf("%w: [%d,%d]", ErrInvalidRange, from, to)
	}
	return Range{from, to}, nil
}

// RangeLen returns the range starting at from covering n values. n must
// be positive.
func RangeLen(from, n int) (Range, error) {
	return NewRange(from, from+n-1)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.From, r.To)
}

func (r Range) Contains(v int) bool {
	return r.From <= v && v <= r.To
}

// Len returns the number of integers in r.
func (r Range) Len() int {
	return r.To - r.From + 1
}

// Overlaps reports whether r and o share at least one value.
func (r Range) Overlaps(o Range) bool {
	return r.From <= o.To && o.From <= r.To
}

// Shift returns r moved by d.
func (r Range) Shift(d int) Range {
	return Range{r.From + d, r.To + d}
}

// Overlap splits r into the part before o, the part shared with o, and
// the part after o. Parts that would be empty are nil.
func (r Range) Overlap(o Range) (before, overlap, after *Range) {
	if r.From < o.From {
		before = &Range{r.From, min(r.To, o.From-1)}
	}
	if r.Overlaps(o) {
		overlap = &Range{max(r.From, o.From), min(r.To, o.To)}
	}
	if r.To > o.To {
		after = &Range{max(r.From, o.To+1), r.To}
	}
	return before, overlap, after
}

// Combine merges overlapping and touching ranges (such as [1,3] and
// [4,6]) into the smallest set of disjoint ranges covering the same
// values, sorted by From.
func Combine(rs []Range) []Range {
	return combine(rs, true)
}

// CombineOverlapping is like Combine, but keeps touching ranges apart
// and only merges ranges that share a value.
func CombineOverlapping(rs []Range) []Range {
	return combine(rs, false)
}

func combine(rs []Range, touching bool) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.From, b.From)
	})
	reach := 0
	if touching {
		reach = 1
	}
	out := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.From <= last.To+reach {
			last.To = max(last.To, r.To)
			continue
		}
		out = append(out, r)
	}
	return out
}

// RangeSum returns the number of integers covered by rs, counting shared
// values once.
func RangeSum(rs []Range) int {
	n := 0
	for _, r := range CombineOverlapping(rs) {
		n += r.Len()
	}
	return n
}
