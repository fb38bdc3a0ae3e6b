package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	r, err := NewRule(50, 98, 2)
	require.NoError(t, err)
	assert.Equal(t, Rule{Src: rng(98, 99), Offset: -48}, r)

	_, err = NewRule(50, 98, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMappingMap(t *testing.T) {
	m := NewMapping(
		MustGet(NewRule(50, 98, 2)),
		MustGet(NewRule(52, 50, 48)),
	)
	tests := map[int]int{
		0:   0,
		49:  49,
		50:  52,
		79:  81,
		97:  99,
		98:  50,
		99:  51,
		100: 100,
	}
	for in, want := range tests {
		assert.Equal(t, want, m.Map(in), "Map(%d)", in)
	}
}

func TestMappingFirstRuleWins(t *testing.T) {
	m := NewMapping(
		Rule{Src: rng(5, 10), Offset: 100},
		Rule{Src: rng(0, 20), Offset: 1000},
	)
	assert.Equal(t, 107, m.Map(7))
	assert.Equal(t, 1004, m.Map(4))

	got := m.Apply([]Range{rng(0, 20)})
	assert.Equal(t, []Range{rng(105, 110), rng(1000, 1004), rng(1011, 1020)}, got)
}

func TestMappingApply(t *testing.T) {
	m := NewMapping(
		MustGet(NewRule(50, 98, 2)),
		MustGet(NewRule(52, 50, 48)),
	)
	got := m.Apply([]Range{rng(79, 92), rng(55, 67)})
	assert.Equal(t, []Range{rng(57, 69), rng(81, 94)}, got)

	got = m.Apply([]Range{rng(40, 120)})
	// The pieces [40,49] [50,51] [52,99] [100,120] touch again.
	assert.Equal(t, []Range{rng(40, 120)}, got)
	for _, v := range []int{40, 49, 50, 97, 98, 99, 100, 120} {
		mapped := m.Map(v)
		found := false
		for _, r := range got {
			found = found || r.Contains(mapped)
		}
		assert.True(t, found, "image of %d (%d) missing from %v", v, mapped, got)
	}
}

func TestMappingManyRules(t *testing.T) {
	// Enough rules to split the R-tree into several nodes.
	var rules []Rule
	for i := 0; i < 500; i++ {
		rules = append(rules, Rule{Src: rng(i*10, i*10+4), Offset: 1})
	}
	m := NewMapping(rules...)
	assert.Len(t, m.Rules(), 500)
	for _, v := range []int{0, 4, 5, 9, 2500, 4994, 4995, 10000} {
		want := v
		if v < 5000 && v%10 < 5 {
			want = v + 1
		}
		assert.Equal(t, want, m.Map(v), "Map(%d)", v)
	}
	assert.Equal(t, []Range{rng(1, 5)}, m.Apply([]Range{rng(0, 4)}))
	assert.Equal(t, []Range{rng(1, 9)}, m.Apply([]Range{rng(0, 9)}))
	assert.Equal(t, []Range{rng(2991, 2995), rng(3001, 3005)}, m.Apply([]Range{rng(2990, 2994), rng(3000, 3004)}))
}

func TestMappingEmpty(t *testing.T) {
	m := NewMapping()
	assert.Equal(t, 42, m.Map(42))
	assert.Equal(t, []Range{rng(1, 9)}, m.Apply([]Range{rng(5, 9), rng(1, 4)}))
	assert.Nil(t, m.Apply(nil))
}

func TestMappingHugeValues(t *testing.T) {
	m := NewMapping(
		MustGet(NewRule(0, 1<<53, 1)),
		MustGet(NewRule(100, 10, 5)),
	)
	assert.Equal(t, 0, m.Map(1<<53))
	assert.Equal(t, 1<<53+1, m.Map(1<<53+1))
	assert.Equal(t, 102, m.Map(12))
	assert.Equal(t, []Range{rng(0, 0), rng(1<<53+1, 1<<53+3)}, m.Apply([]Range{rng(1<<53, 1<<53+3)}))

	small := NewMapping(MustGet(NewRule(5, -1<<60, 2)))
	assert.Equal(t, 6, small.Map(-1<<60+1))
	assert.Equal(t, -1<<60+2, small.Map(-1<<60+2))
}
