package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(from, to int) Range {
	return MustGet(NewRange(from, to))
}

func ptr(r Range) *Range { return &r }

func TestNewRange(t *testing.T) {
	r, err := NewRange(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	_, err = NewRange(4, 3)
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err = RangeLen(10, 5)
	require.NoError(t, err)
	assert.Equal(t, rng(10, 14), r)

	_, err = RangeLen(10, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRangeContains(t *testing.T) {
	r := rng(-2, 5)
	for v, want := range map[int]bool{-3: false, -2: true, 0: true, 5: true, 6: false} {
		assert.Equal(t, want, r.Contains(v), "Contains(%d)", v)
	}
}

func TestRangeOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		r, o                   Range
		before, overlap, after *Range
	}{
		{
			name:    "inside",
			r:       rng(1, 10),
			o:       rng(4, 6),
			before:  ptr(rng(1, 3)),
			overlap: ptr(rng(4, 6)),
			after:   ptr(rng(7, 10)),
		},
		{
			name:    "covered",
			r:       rng(4, 6),
			o:       rng(1, 10),
			overlap: ptr(rng(4, 6)),
		},
		{
			name:    "left edge",
			r:       rng(1, 5),
			o:       rng(5, 9),
			before:  ptr(rng(1, 4)),
			overlap: ptr(rng(5, 5)),
		},
		{
			name:    "right edge",
			r:       rng(5, 12),
			o:       rng(1, 9),
			overlap: ptr(rng(5, 9)),
			after:   ptr(rng(10, 12)),
		},
		{
			name:   "disjoint before",
			r:      rng(1, 3),
			o:      rng(5, 9),
			before: ptr(rng(1, 3)),
		},
		{
			name:  "disjoint after",
			r:     rng(10, 12),
			o:     rng(1, 9),
			after: ptr(rng(10, 12)),
		},
		{
			name:    "equal",
			r:       rng(2, 2),
			o:       rng(2, 2),
			overlap: ptr(rng(2, 2)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, overlap, after := tt.r.Overlap(tt.o)
			assert.Equal(t, tt.before, before, "before")
			assert.Equal(t, tt.overlap, overlap, "overlap")
			assert.Equal(t, tt.after, after, "after")

			n := 0
			for _, p := range []*Range{before, overlap, after} {
				if p != nil {
					n += p.Len()
				}
			}
			assert.Equal(t, tt.r.Len(), n, "pieces cover the receiver")
		})
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		in          []Range
		want        []Range
		overlapping []Range
	}{
		{
			in:          []Range{rng(1, 5), rng(3, 8), rng(10, 12)},
			want:        []Range{rng(1, 8), rng(10, 12)},
			overlapping: []Range{rng(1, 8), rng(10, 12)},
		},
		{
			in:          []Range{rng(1, 3), rng(4, 6), rng(8, 9)},
			want:        []Range{rng(1, 6), rng(8, 9)},
			overlapping: []Range{rng(1, 3), rng(4, 6), rng(8, 9)},
		},
		{
			in:          []Range{rng(1, 10), rng(2, 3), rng(4, 5), rng(11, 11)},
			want:        []Range{rng(1, 11)},
			overlapping: []Range{rng(1, 10), rng(11, 11)},
		},
		{
			in:          []Range{rng(7, 9), rng(1, 2)},
			want:        []Range{rng(1, 2), rng(7, 9)},
			overlapping: []Range{rng(1, 2), rng(7, 9)},
		},
		{
			in: nil,
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Combine(tt.in), "Combine(%v)", tt.in)
		assert.Equal(t, tt.overlapping, CombineOverlapping(tt.in), "CombineOverlapping(%v)", tt.in)
	}
}

func TestCombineDoesNotModifyInput(t *testing.T) {
	in := []Range{rng(5, 6), rng(1, 5)}
	Combine(in)
	assert.Equal(t, []Range{rng(5, 6), rng(1, 5)}, in)
}

func TestRangeSum(t *testing.T) {
	assert.Equal(t, 11, RangeSum([]Range{rng(1, 5), rng(3, 8), rng(10, 12)}))
	assert.Zero(t, RangeSum(nil))
}
