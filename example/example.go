package main

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/puzzlebox/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed example.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

type almanac struct {
	seeds    []int
	mappings []*aoc.Mapping
}

func (s solver) almanac() almanac {
	var a almanac
	var rules []aoc.Rule
	flush := func() {
		if rules != nil {
			a.mappings = append(a.mappings, aoc.NewMapping(rules...))
			rules = nil
		}
	}
	s.ForLines(func(line string) {
		switch {
		case strings.HasPrefix(line, "seeds:"):
			a.seeds = aoc.Ints(strings.Fields(aoc.TrimPrefix(line, "seeds:"))...)
		case strings.HasSuffix(line, "map:"):
			flush()
			rules = []aoc.Rule{}
		case line != "":
			f := aoc.Ints(strings.Fields(line)...)
			rules = append(rules, aoc.MustGet(aoc.NewRule(f[0], f[1], f[2])))
		}
	})
	flush()
	return a
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := s.almanac()
	best := -1
	for _, v := range a.seeds {
		for _, m := range a.mappings {
			v = m.Map(v)
		}
		if best == -1 || v < best {
			best = v
		}
	}
	return best
}

// want=46
func (s solver) D5p2() any {
	a := s.almanac()
	var rs []aoc.Range
	for i := 0; i+1 < len(a.seeds); i += 2 {
		rs = append(rs, aoc.MustGet(aoc.RangeLen(a.seeds[i], a.seeds[i+1])))
	}
	for _, m := range a.mappings {
		rs = m.Apply(rs)
		s.Debugf("%v", rs)
	}
	return rs[0].From
}

// crucible is the state of a crucible: where it is, which way it last
// moved, and how many cells it has moved that way.
type crucible struct {
	Pt  aoc.Pt
	Dir aoc.Direction
	Run int
	End bool
}

func (s solver) heatLoss(minRun, maxRun int) any {
	grid := s.Grid()
	size := grid.Size()
	goal := aoc.Pt{X: size.X - 1, Y: size.Y - 1}

	var g aoc.Keyed[crucible]
	sink := g.ID(crucible{End: true})
	start := g.ID(crucible{})

	seen := map[crucible]bool{}
	q := aoc.NewQueue(crucible{})
	q.While(func(c crucible) bool {
		if seen[c] {
			return true
		}
		seen[c] = true
		from := g.ID(c)
		if c.Pt == goal && c.Run >= minRun {
			g.AddDirectedEdge(from, sink, 0)
		}
		for _, d := range aoc.Directions {
			next := crucible{Pt: c.Pt.Step(d), Dir: d, Run: 1}
			switch {
			case c.Run == 0:
				// At the start, any direction goes.
			case d == c.Dir.Reverse():
				continue
			case d == c.Dir:
				next.Run = c.Run + 1
			case c.Run < minRun:
				continue
			}
			if next.Run > maxRun {
				continue
			}
			v, ok := grid.AtOk(next.Pt)
			if !ok {
				continue
			}
			g.AddDirectedEdge(from, g.ID(next), aoc.Digit(rune(v)))
			q.Push(next)
		}
		return true
	})

	_, cost, ok := g.ShortestPath(start, sink)
	if !ok {
		return "no path"
	}
	return cost
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return s.heatLoss(1, 3)
}

// want=94
func (s solver) D17p2() any {
	return s.heatLoss(4, 10)
}

var digDirs = map[string]aoc.Direction{
	"R": aoc.Right,
	"D": aoc.Down,
	"L": aoc.Left,
	"U": aoc.Up,
}

type dig struct {
	dir aoc.Direction
	n   int
}

func (s solver) digPlan(useColor bool) []dig {
	var plan []dig
	s.ForLines(func(line string) {
		f := strings.Fields(line)
		if len(f) != 3 {
			return
		}
		if !useColor {
			plan = append(plan, dig{digDirs[f[0]], aoc.Int(f[1])})
			return
		}
		hex := strings.Trim(f[2], "(#)")
		n := aoc.MustGet(strconv.ParseInt(hex[:5], 16, 64))
		plan = append(plan, dig{aoc.Directions[(aoc.Digit(rune(hex[5]))+1)%4], int(n)})
	})
	return plan
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f2)
D 2 (#d2c112)
R 2 (#59c680)
D 2 (#411b02)
L 5 (#8ceab2)
U 2 (#caa173)
L 1 (#1b4ca2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fd2)
L 2 (#015232)
U 2 (#7a21e2)
*/
func (s solver) D18p1() any {
	var trench []aoc.Pt
	var lo, hi aoc.Pt
	at := aoc.Pt{}
	for _, d := range s.digPlan(false) {
		for i := 0; i < d.n; i++ {
			at = at.Step(d.dir)
			trench = append(trench, at)
			lo = aoc.Pt{X: min(lo.X, at.X), Y: min(lo.Y, at.Y)}
			hi = aoc.Pt{X: max(hi.X, at.X), Y: max(hi.Y, at.Y)}
		}
	}

	// Leave a border of ground so the outside is one connected region.
	origin := lo.Add(aoc.Pt{X: -1, Y: -1})
	grid := aoc.MakeGrid[byte](hi.X-lo.X+3, hi.Y-lo.Y+3)
	for _, p := range trench {
		grid.Set(p.Add(origin.Scale(-1)), '#')
	}
	outside := aoc.MustGet(aoc.FloodFill(grid, aoc.Pt{}, '~'))
	size := grid.Size()
	return size.X*size.Y - outside
}

// want=952408144115
func (s solver) D18p2() any {
	at := aoc.Pt{}
	pts := []aoc.Pt{at}
	for _, d := range s.digPlan(true) {
		at = at.Add(d.dir.Delta().Scale(d.n))
		pts = append(pts, at)
	}
	return aoc.PolygonBoundedPoints(pts)
}
