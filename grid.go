package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a raster indexed as g[y][x]. All rows are expected to have the
// same length.
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// InBounds reports whether p lies inside the grid.
func (g Grid[T]) InBounds(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Count returns the number of cells for which f returns true.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if f(v) {
				n++
			}
		}
	}
	return n
}

var hashers sync.Map // reflect.Type => func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid contents, useful for spotting repeated
// states.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// RotateCounterClockwiseInto writes g rotated a quarter turn
// counter-clockwise into out, which must be Size().Y wide and Size().X
// tall.
func (g Grid[T]) RotateCounterClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateCounterClockwiseInto(out)
	return out
}

// Size returns the width and height of the grid as a point.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// EdgePaths returns every border cell paired with the direction that
// points into the grid.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// ToGraph converts the cells reachable from start into a graph with an
// edge of weight 1 between neighboring cells. If allowDiagonals is true,
// then diagonal neighbors are included. If disallowed is not nil, it is
// called on each cell, and if it returns true, that cell is not included
// in the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) *Keyed[Pt] {
	g := new(Keyed[Pt])

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}
	allowed := func(p Pt) bool {
		v, ok := grid.AtOk(p)
		return ok && (disallowed == nil || !disallowed(v))
	}
	if !allowed(start) {
		return g
	}

	q := NewQueue(start)
	g.ID(start)
	q.While(func(p1 Pt) bool {
		id1 := g.ID(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if !allowed(p2) {
				return true
			}
			if _, ok := g.Lookup(p2); !ok {
				q.Push(p2)
			}
			g.AddDirectedEdge(id1, g.ID(p2), 1)
			return true
		})
		return true
	})
	return g
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if the result
// falls off the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

var (
	deltas = [...]Pt{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}
	arrows = [...]string{Up: "^", Right: ">", Down: "v", Left: "<"}
)

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	return deltas[d]
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(arrows) {
		return ""
	}
	return arrows[d]
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// Scale multiplies both coordinates by n.
func (p Pt2[T]) Scale(n T) Pt2[T] {
	return Pt2[T]{p.X * n, p.Y * n}
}

// Step returns the neighbor of p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	dp := d.Delta()
	return Pt2[T]{p.X + T(dp.X), p.Y + T(dp.Y)}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range Directions {
		if !f(p.Step(d)) {
			return
		}
	}
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p into a grid of the given size, as on a torus.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}
