// Package aoc is a toolkit for solving grid and graph puzzles: a priority
// queue, a handle-based graph with Dijkstra shortest paths, scan-line
// flood fill, closed integer ranges, and a small runner that checks
// solvers against their samples before running them on real input.
//
// A solver is a struct embedding *Puzzle with methods named D{day}p{part}:
//
//	type solver struct {
//		*aoc.Puzzle
//	}
//
//	/*
//	want=142
//
//	sample input
//	*/
//	func (s solver) D1p1() any { ... }
//
// The doc comment of each method holds the expected answer for the sample
// that follows it; methods without a sample reuse the previous one.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the puzzle input, or the current sample in sample mode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(p.cachePath("input"), fmt.Sprintf("%s/%d/day/%d/input", baseURL, p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Grid reads the input as a grid of bytes, one row per line.
func (p *Puzzle) Grid() Grid[byte] {
	var g Grid[byte]
	p.ForLines(func(line string) {
		if line != "" {
			g = append(g, []byte(line))
		}
	})
	return g
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}, grouped
// by day. The methods must take no arguments and return any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay      int
	flagPart        string
	flagDebug       bool
	flagOnlySample  bool
	flagSkipSample  bool
	flagInputDir    string
	flagSessionFile string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input-dir", ".", "directory caching puzzle inputs")
	flag.StringVar(&flagSessionFile, "session-file", "", "file holding the site session cookie (default $HOME/keys/aoc.session)")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs each part of day, first against its sample. It reports
// whether every sample matched.
func runDay(slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching is not timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
				continue
			}
			want := p.Sample().want
			if fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
				return false
			}
			fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
		}
	}
	return true
}

// Run runs the solver methods of slvr, a pointer to a struct embedding
// *Puzzle. src is the source file declaring the methods, from which the
// samples are read; it is usually embedded with go:embed.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		runDay(slvr, year, days[d], samples)
		fmt.Println()
	}
}
