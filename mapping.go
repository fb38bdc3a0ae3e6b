package aoc

import (
	"slices"

	"github.com/dhconnelly/rtreego"
)

// Rule remaps every value in Src by adding Offset.
type Rule struct {
	Src    Range
	Offset int
}

// NewRule returns the rule that sends the n values starting at src to the
// n values starting at dst.
func NewRule(dst, src, n int) (Rule, error) {
	r, err := RangeLen(src, n)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Src: r, Offset: dst - src}, nil
}

// Mapping is a piecewise remapping of integers. Values not covered by any
// rule map to themselves. If rules overlap, the earliest one wins.
type Mapping struct {
	rules []Rule
	tree  *rtreego.Rtree
	huge  bool // some rule lies past ±exactFloat
}

// ruleEntry wraps a rule for R-tree storage.
type ruleEntry struct {
	ix int
	bb rtreego.Rect
}

func (e *ruleEntry) Bounds() rtreego.Rect {
	return e.bb
}

// NewMapping indexes rules for lookup.
func NewMapping(rules ...Rule) *Mapping {
	m := &Mapping{
		rules: slices.Clone(rules),
		tree:  rtreego.NewTree(1, 25, 50), // 1D, min 25, max 50 entries per node
	}
	for i, r := range m.rules {
		if r.Src.From < -exactFloat || r.Src.To > exactFloat {
			m.huge = true
			continue
		}
		m.tree.Insert(&ruleEntry{ix: i, bb: rangeRect(r.Src)})
	}
	return m
}

// exactFloat bounds the values whose quarter offsets rangeRect can still
// represent in a float64.
const exactFloat = 1 << 50

// rangeRect maps [From, To] to the real interval [From-¼, To+¼], so
// neighboring integer ranges do not touch.
func rangeRect(r Range) rtreego.Rect {
	return MustGet(rtreego.NewRect(
		rtreego.Point{float64(r.From) - 0.25},
		[]float64{float64(r.Len()) - 0.5},
	))
}

// candidates returns the indexes of rules overlapping r, in rule order.
// Outside ±exactFloat, rules are found by scanning them all.
func (m *Mapping) candidates(r Range) []int {
	var out []int
	if m.huge || r.From < -exactFloat || r.To > exactFloat {
		for i, rule := range m.rules {
			if rule.Src.Overlaps(r) {
				out = append(out, i)
			}
		}
		return out
	}
	for _, s := range m.tree.SearchIntersect(rangeRect(r)) {
		e := s.(*ruleEntry)
		if m.rules[e.ix].Src.Overlaps(r) {
			out = append(out, e.ix)
		}
	}
	slices.Sort(out)
	return out
}

func (m *Mapping) Rules() []Rule {
	return slices.Clone(m.rules)
}

// Map returns the image of v.
func (m *Mapping) Map(v int) int {
	c := m.candidates(Range{v, v})
	if len(c) == 0 {
		return v
	}
	return v + m.rules[c[0]].Offset
}

// Apply returns the image of the ranges rs as a combined set of ranges.
// Each range is split against the rules it overlaps; only the overlapping
// pieces move, and everything else is carried through unchanged.
func (m *Mapping) Apply(rs []Range) []Range {
	var out []Range
	var work Stack[Range]
	for _, r := range rs {
		work.Push(r)
	}
	work.While(func(r Range) bool {
		c := m.candidates(r)
		if len(c) == 0 {
			out = append(out, r)
			return true
		}
		rule := m.rules[c[0]]
		before, overlap, after := r.Overlap(rule.Src)
		out = append(out, overlap.Shift(rule.Offset))
		if before != nil {
			work.Push(*before)
		}
		if after != nil {
			work.Push(*after)
		}
		return true
	})
	return Combine(out)
}
