package aoc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphIdentity(t *testing.T) {
	var g Graph[string]
	a := g.AddNode("x")
	b := g.AddNode("x")
	assert.NotEqual(t, a, b, "equal payloads are still distinct nodes")
	assert.Equal(t, 2, g.Len())

	g.AddDirectedEdge(a, b, 3)
	assert.Equal(t, []Edge{{To: b, Weight: 3}}, g.Edges(a))
	assert.Empty(t, g.Edges(b))
	w, ok := g.Weight(a, b)
	assert.True(t, ok)
	assert.Equal(t, 3, w)
	_, ok = g.Weight(b, a)
	assert.False(t, ok)
}

func TestKeyed(t *testing.T) {
	var g Keyed[Pt]
	a := g.ID(Pt{1, 2})
	assert.Equal(t, a, g.ID(Pt{1, 2}))
	_, ok := g.Lookup(Pt{3, 4})
	assert.False(t, ok)
	assert.Equal(t, 1, g.Len())

	c := g.Clone()
	c.ID(Pt{3, 4})
	assert.Equal(t, 1, g.Len(), "clone is independent")
	assert.Equal(t, 2, c.Len())
}

func TestRemoveEdgeAndClone(t *testing.T) {
	var g Graph[int]
	a, b, c := g.AddNode(0), g.AddNode(1), g.AddNode(2)
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	g2 := g.Clone()
	g.RemoveEdge(a, b)
	assert.Empty(t, g.Edges(a))
	assert.Equal(t, []Edge{{To: c, Weight: 1}}, g.Edges(b))
	assert.Len(t, g2.Edges(b), 2, "clone keeps removed edges")
}

func TestReachableNodes(t *testing.T) {
	g, id := namedGraph(
		"A", "B", 1,
		"B", "C", 1,
		"C", "A", 1,
		"D", "A", 1,
	)
	got := g.ReachableNodes(id("A"))
	assert.Equal(t, map[NodeID]bool{id("A"): true, id("B"): true, id("C"): true}, got)
}

func TestNumPaths(t *testing.T) {
	g, id := namedGraph(
		"S", "A", 1,
		"S", "B", 1,
		"A", "B", 1,
		"B", "A", 1,
		"A", "T", 1,
		"B", "T", 1,
	)
	// S-A-T, S-B-T, S-A-B-T, S-B-A-T
	assert.Equal(t, 4, g.NumPaths(id("S"), id("T")))

	avoidB := func(x NodeID, visited map[NodeID]int) bool {
		return x != id("B") && visited[x] == 0
	}
	assert.Equal(t, 1, g.NumPathsWithRestriction(id("S"), id("T"), avoidB))
}

func TestLongestPath(t *testing.T) {
	g, id := namedGraph(
		"S", "A", 1,
		"A", "T", 1,
		"S", "B", 2,
		"B", "C", 2,
		"C", "T", 2,
		"C", "S", 100,
	)
	got, ok := g.LongestPath(id("S"), id("T"))
	require.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = g.LongestPath(id("T"), id("S"))
	assert.False(t, ok)
}

func TestAllPairsDistances(t *testing.T) {
	g, id := namedGraph(
		"A", "B", 4,
		"A", "C", 1,
		"C", "B", 1,
		"B", "D", 3,
	)
	dist := g.AllPairsDistances()
	assert.Equal(t, 2, dist[id("A")][id("B")])
	assert.Equal(t, 5, dist[id("A")][id("D")])
	assert.Equal(t, 4, dist[id("C")][id("D")])
	assert.Equal(t, math.MaxInt, dist[id("D")][id("A")])
	for i := range dist {
		assert.Zero(t, dist[i][i])
	}

	for from, want := range g.Distances(id("A")) {
		assert.Equal(t, want, dist[id("A")][from])
	}
}

func TestMinCut(t *testing.T) {
	// Two triangles joined by a single bridge.
	var g Graph[int]
	n := make([]NodeID, 6)
	for i := range n {
		n[i] = g.AddNode(i)
	}
	for _, tri := range [][3]NodeID{{n[0], n[1], n[2]}, {n[3], n[4], n[5]}} {
		g.AddEdge(tri[0], tri[1], 1)
		g.AddEdge(tri[1], tri[2], 1)
		g.AddEdge(tri[2], tri[0], 1)
	}
	g.AddEdge(n[2], n[3], 1)

	cut, w := g.MinCut()
	assert.Equal(t, 1, w)
	require.Len(t, cut, 1)
	assert.ElementsMatch(t, []NodeID{n[2], n[3]}, []NodeID{cut[0].A, cut[0].B})
}

func TestMinCutWeighted(t *testing.T) {
	// A heavy square with one light corner.
	g, id := namedGraph()
	add := func(a, b string, w int) { g.AddEdge(id(a), id(b), w) }
	add("A", "B", 5)
	add("B", "C", 5)
	add("C", "D", 5)
	add("D", "A", 5)
	add("D", "E", 1)
	add("A", "E", 2)

	cut, w := g.MinCut()
	assert.Equal(t, 3, w)
	assert.Len(t, cut, 2)
}

func TestMinCutTrivial(t *testing.T) {
	var g Graph[int]
	cut, w := g.MinCut()
	assert.Nil(t, cut)
	assert.Zero(t, w)

	g.AddNode(0)
	cut, w = g.MinCut()
	assert.Nil(t, cut)
	assert.Zero(t, w)
}
