package aoc

import "fmt"

// span is a run of cells [x1, x2] on row y still to be scanned, along
// with the direction dy of the row it was seeded from.
type span struct {
	x1, x2, y, dy int
}

// FloodFill replaces the 4-connected region of cells that share the
// seed's value with fill, and returns the number of cells changed.
//
// It fills whole horizontal runs at a time and keeps pending runs on an
// explicit stack; it does not recurse.
//
// Filling with the seed's own value changes nothing. It returns
// ErrOutOfBounds if seed is outside the grid.
func FloodFill[T comparable](g Grid[T], seed Pt, fill T) (int, error) {
	old, ok := g.AtOk(seed)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, seed)
	}
	if old == fill {
		return 0, nil
	}

	inside := func(x, y int) bool {
		v, ok := g.AtOk(Pt{x, y})
		return ok && v == old
	}
	n := 0
	set := func(x, y int) {
		g[y][x] = fill
		n++
	}

	var s Stack[span]
	s.Push(span{seed.X, seed.X, seed.Y, 1})
	s.Push(span{seed.X, seed.X, seed.Y - 1, -1})
	s.While(func(sp span) bool {
		x1, x2, y, dy := sp.x1, sp.x2, sp.y, sp.dy
		x := x1
		if inside(x, y) {
			for inside(x-1, y) {
				set(x-1, y)
				x--
			}
			if x < x1 {
				// The run leaked left past its parent; look back up.
				s.Push(span{x, x1 - 1, y - dy, -dy})
			}
		}
		for x1 <= x2 {
			for inside(x1, y) {
				set(x1, y)
				x1++
			}
			if x1 > x {
				s.Push(span{x, x1 - 1, y + dy, dy})
			}
			if x1-1 > x2 {
				// Leaked right past the parent.
				s.Push(span{x2 + 1, x1 - 1, y - dy, -dy})
			}
			x1++
			for x1 < x2 && !inside(x1, y) {
				x1++
			}
			x = x1
		}
		return true
	})
	return n, nil
}
