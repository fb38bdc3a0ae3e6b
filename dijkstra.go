package aoc

import (
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// noTarget makes a search settle every reachable node.
const noTarget NodeID = -1

// search is the state of a single Dijkstra run. It is indexed by NodeID
// and owned by one query, so the graph itself is never written to.
type search[T any] struct {
	g     *Graph[T]
	start NodeID
	ties  bool // record every predecessor on an equal-cost path

	dist []int
	pred [][]NodeID
	done []bool
	q    *PQ[NodeID, int]
}

func (g *Graph[T]) newSearch(start NodeID, ties bool) *search[T] {
	n := len(g.nodes)
	s := &search[T]{
		g:     g,
		start: start,
		ties:  ties,
		dist:  make([]int, n),
		pred:  make([][]NodeID, n),
		done:  make([]bool, n),
		q:     MinQueue[NodeID, int](),
	}
	for i := range s.dist {
		s.dist[i] = math.MaxInt
	}
	s.dist[start] = 0
	s.q.Push(start, 0)
	return s
}

// run settles nodes in order of distance until target is settled, or
// until the queue is empty. When collecting ties it keeps going while
// the queue still holds nodes as close as target, since those may add
// predecessors of equal cost.
func (s *search[T]) run(target NodeID) {
	for s.q.Len() > 0 {
		if target != noTarget && s.done[target] {
			_, d, _ := s.q.Peek()
			if !s.ties || d > s.dist[target] {
				return
			}
		}
		u := MustGet(s.q.Pop())
		s.done[u] = true
		du := s.dist[u]
		for _, e := range s.g.edges[u] {
			v := e.To
			nd := du + e.Weight
			switch {
			case nd < s.dist[v]:
				s.dist[v] = nd
				s.pred[v] = append(s.pred[v][:0], u)
				// Push moves v if it is already queued.
				s.q.Push(v, nd)
			case nd == s.dist[v] && s.ties && v != s.start:
				// Parallel edges from u are relaxed back to back.
				if pv := s.pred[v]; len(pv) == 0 || pv[len(pv)-1] != u {
					s.pred[v] = append(pv, u)
				}
			}
		}
	}
}

// ShortestPath returns the cheapest path from start to end, inclusive of
// both, and its cost. ok is false if end is unreachable.
func (g *Graph[T]) ShortestPath(start, end NodeID) (path []NodeID, cost int, ok bool) {
	s := g.newSearch(start, false)
	s.run(end)
	if !s.done[end] {
		return nil, 0, false
	}
	for at := end; ; at = s.pred[at][0] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	slices.Reverse(path)
	return path, s.dist[end], true
}

// Distances returns the distance from start to every reachable node.
func (g *Graph[T]) Distances(start NodeID) map[NodeID]int {
	s := g.newSearch(start, false)
	s.run(noTarget)
	out := make(map[NodeID]int)
	for i, d := range s.done {
		if d {
			out[NodeID(i)] = s.dist[i]
		}
	}
	return out
}

// AllShortestPaths is like ShortestPath but keeps every minimum-cost way
// of reaching each node. ok is false if end is unreachable.
func (g *Graph[T]) AllShortestPaths(start, end NodeID) (*ShortestPaths, bool) {
	s := g.newSearch(start, true)
	s.run(end)
	if !s.done[end] {
		return nil, false
	}
	return &ShortestPaths{
		Start: start,
		End:   end,
		Cost:  s.dist[end],
		pred:  s.pred,
	}, true
}

// ShortestPaths describes every minimum-cost path between two nodes as a
// set of predecessors per node. The number of distinct paths can grow
// exponentially; prefer Nodes over Paths when only the touched nodes are
// needed.
type ShortestPaths struct {
	Start, End NodeID
	Cost       int

	pred [][]NodeID
}

// Predecessors returns the nodes immediately before id on some
// minimum-cost path to id.
func (sp *ShortestPaths) Predecessors(id NodeID) []NodeID {
	if id == sp.Start {
		return nil
	}
	return slices.Clone(sp.pred[id])
}

// Nodes returns, in ascending order, every node that lies on at least one
// minimum-cost path from Start to End.
func (sp *ShortestPaths) Nodes() []NodeID {
	seen := make(map[NodeID]bool)
	var st Stack[NodeID]
	st.Push(sp.End)
	st.While(func(v NodeID) bool {
		if seen[v] {
			return true
		}
		seen[v] = true
		if v == sp.Start {
			return true
		}
		for _, p := range sp.pred[v] {
			st.Push(p)
		}
		return true
	})
	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}

// Paths enumerates every minimum-cost simple path from Start to End.
func (sp *ShortestPaths) Paths() [][]NodeID {
	var (
		out    [][]NodeID
		rev    []NodeID
		onPath = make(map[NodeID]bool)
		walk   func(v NodeID)
	)
	walk = func(v NodeID) {
		rev = append(rev, v)
		onPath[v] = true
		defer func() {
			rev = rev[:len(rev)-1]
			onPath[v] = false
		}()
		if v == sp.Start {
			p := slices.Clone(rev)
			slices.Reverse(p)
			out = append(out, p)
			return
		}
		for _, u := range sp.pred[v] {
			if !onPath[u] {
				walk(u)
			}
		}
	}
	walk(sp.End)
	return out
}
