package aoc

import (
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// NodeID is a handle to a node of a Graph. Handles are assigned densely
// from zero in the order nodes are added.
type NodeID int

// Edge is an outgoing edge to To. Weights must not be negative.
type Edge struct {
	To     NodeID
	Weight int
}

// Graph is a weighted directed graph whose nodes carry a payload of type T.
//
// Nodes are identified by handle, not by payload: two nodes may carry equal
// payloads and still be distinct. Use Keyed when nodes should be looked up
// by a key.
//
// The graph is never mutated by queries, so any number of queries may run
// concurrently as long as nothing adds nodes or edges meanwhile.
type Graph[T any] struct {
	nodes []T
	edges [][]Edge
}

// AddNode adds a node carrying v and returns its handle.
func (g *Graph[T]) AddNode(v T) NodeID {
	g.nodes = append(g.nodes, v)
	g.edges = append(g.edges, nil)
	return NodeID(len(g.nodes) - 1)
}

// Node returns the payload of id.
func (g *Graph[T]) Node(id NodeID) T {
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// Edges returns the outgoing edges of id. The returned slice must not be
// modified.
func (g *Graph[T]) Edges(id NodeID) []Edge {
	return g.edges[id]
}

// AddDirectedEdge adds an edge from -> to. The weight must be >= 0; this
// is not checked, and shortest path results are undefined otherwise.
func (g *Graph[T]) AddDirectedEdge(from, to NodeID, weight int) {
	g.edges[from] = append(g.edges[from], Edge{To: to, Weight: weight})
}

// AddEdge adds edges in both directions between a and b.
func (g *Graph[T]) AddEdge(a, b NodeID, weight int) {
	g.AddDirectedEdge(a, b, weight)
	if a != b {
		g.AddDirectedEdge(b, a, weight)
	}
}

// RemoveEdge removes all edges between a and b, in both directions.
func (g *Graph[T]) RemoveEdge(a, b NodeID) {
	g.edges[a] = slices.DeleteFunc(g.edges[a], func(e Edge) bool { return e.To == b })
	g.edges[b] = slices.DeleteFunc(g.edges[b], func(e Edge) bool { return e.To == a })
}

// Weight returns the weight of the first edge from a to b.
func (g *Graph[T]) Weight(a, b NodeID) (int, bool) {
	for _, e := range g.edges[a] {
		if e.To == b {
			return e.Weight, true
		}
	}
	return 0, false
}

func (g *Graph[T]) Clone() *Graph[T] {
	out := &Graph[T]{
		nodes: slices.Clone(g.nodes),
		edges: make([][]Edge, len(g.edges)),
	}
	for i, e := range g.edges {
		out.edges[i] = slices.Clone(e)
	}
	return out
}

// Keyed is a Graph with an index from key to node, for graphs built
// from puzzle state. The key should hold all of the state that edge costs
// depend on (position, facing, run length...), so that the same cell in
// different states becomes different nodes.
type Keyed[K comparable] struct {
	Graph[K]
	ids map[K]NodeID
}

// ID returns the node for k, adding it if needed.
func (g *Keyed[K]) ID(k K) NodeID {
	if id, ok := g.ids[k]; ok {
		return id
	}
	InitMap(&g.ids)
	id := g.AddNode(k)
	g.ids[k] = id
	return id
}

// Lookup returns the node for k, if any.
func (g *Keyed[K]) Lookup(k K) (NodeID, bool) {
	id, ok := g.ids[k]
	return id, ok
}

func (g *Keyed[K]) Clone() *Keyed[K] {
	return &Keyed[K]{
		Graph: *g.Graph.Clone(),
		ids:   maps.Clone(g.ids),
	}
}

// ReachableNodes returns the set of nodes reachable from a, including a.
func (g *Graph[T]) ReachableNodes(a NodeID) map[NodeID]bool {
	visited := make(map[NodeID]bool)
	q := NewQueue(a)
	q.While(func(v NodeID) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, e := range g.edges[v] {
			q.Push(e.To)
		}
		return true
	})
	return visited
}

// NumPathsWithRestriction counts the paths from start to end where each
// step onto x is allowed by canVisit. alreadyVisited counts how many times
// each node is on the current path.
func (g *Graph[T]) NumPathsWithRestriction(start, end NodeID, canVisit func(x NodeID, alreadyVisited map[NodeID]int) bool) int {
	return g.numPathsHelper(start, end, canVisit, make(map[NodeID]int))
}

// NumPaths counts the simple paths from start to end.
func (g *Graph[T]) NumPaths(start, end NodeID) int {
	return g.NumPathsWithRestriction(start, end, func(x NodeID, alreadyVisited map[NodeID]int) bool {
		return alreadyVisited[x] == 0
	})
}

func (g *Graph[T]) numPathsHelper(start, end NodeID, canVisit func(x NodeID, alreadyVisited map[NodeID]int) bool, visited map[NodeID]int) int {
	if start == end {
		return 1
	}
	visited[start]++
	defer func() {
		visited[start]--
	}()
	count := 0
	for _, e := range g.edges[start] {
		if canVisit(e.To, visited) {
			count += g.numPathsHelper(e.To, end, canVisit, visited)
		}
	}
	return count
}

// LongestPath returns the cost of the most expensive simple path from
// start to end.
func (g *Graph[T]) LongestPath(start, end NodeID) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make([]bool, len(g.nodes)))
}

func (g *Graph[T]) longestPathHelper(start, end NodeID, visited []bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for _, e := range g.edges[start] {
		if visited[e.To] {
			continue
		}
		got, ok := g.longestPathHelper(e.To, end, visited)
		got += e.Weight
		if ok && (max == -1 || got > max) {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}

// AllPairsDistances returns the matrix of shortest distances between every
// pair of nodes using Floyd–Warshall. Unreachable pairs are math.MaxInt.
func (g *Graph[T]) AllPairsDistances() [][]int {
	n := len(g.nodes)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = math.MaxInt
		}
		dist[i][i] = 0
		for _, e := range g.edges[i] {
			if e.Weight < dist[i][e.To] {
				dist[i][e.To] = e.Weight
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if dik == math.MaxInt {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k][j]
				if dkj == math.MaxInt {
					continue
				}
				if d := dik + dkj; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}

// Pair is an unordered pair of nodes.
type Pair struct {
	A, B NodeID
}

// MinCut calculates the minimum cut of the graph using the Stoer–Wagner
// algorithm. The graph is treated as undirected, so edges are expected to
// have been added with AddEdge. It returns the edges that make up the cut
// and their total weight.
func (g *Graph[T]) MinCut() ([]Pair, int) {
	if len(g.nodes) < 2 {
		return nil, 0
	}
	w := make(map[NodeID]map[NodeID]int, len(g.nodes))
	group := make(map[NodeID][]NodeID, len(g.nodes))
	for i := range g.nodes {
		id := NodeID(i)
		w[id] = make(map[NodeID]int)
		group[id] = []NodeID{id}
	}
	for i, es := range g.edges {
		for _, e := range es {
			if e.To != NodeID(i) {
				w[NodeID(i)][e.To] += e.Weight
			}
		}
	}

	var (
		start  = AnyKey(w)
		minCut = math.MaxInt
		best   []NodeID
	)
	for len(w) > 1 {
		s, t, cut := minCutPhase(w, start)
		if cut < minCut {
			minCut = cut
			best = slices.Clone(group[t])
		}
		group[s] = append(group[s], group[t]...)
		delete(group, t)
		merge(w, s, t)
	}

	in := make(map[NodeID]bool, len(best))
	for _, v := range best {
		in[v] = true
	}
	var cuts []Pair
	for _, v := range best {
		for _, e := range g.edges[v] {
			if !in[e.To] {
				cuts = append(cuts, Pair{v, e.To})
			}
		}
	}
	return cuts, minCut
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut separating t from the rest.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func minCutPhase(w map[NodeID]map[NodeID]int, start NodeID) (s, t NodeID, cut int) {
	q := MaxQueue[NodeID, int]()
	for k := range w {
		if k != start {
			q.Push(k, 0)
		}
	}
	add := func(v NodeID) {
		for k, wk := range w[v] {
			if p, ok := q.Priority(k); ok {
				MustDo(q.ChangePriority(k, p+wk))
			}
		}
	}

	t = start
	add(start)
	for q.Len() > 0 {
		_, cut, _ = q.Peek()
		next := MustGet(q.Pop())
		s, t = t, next
		add(next)
	}
	return s, t, cut
}

// merge folds t into s.
func merge(w map[NodeID]map[NodeID]int, s, t NodeID) {
	for k, wk := range w[t] {
		delete(w[k], t)
		if k == s {
			continue
		}
		w[s][k] += wk
		w[k][s] += wk
	}
	delete(w, t)
}
