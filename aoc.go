// Package aoc are quick & dirty utilities for solving the Advent of Code
// 2021 puzzles: input splitting and decoding, small generic math helpers,
// a dense grid, and the Run harness that dispatches to D{day}p{part}
// solver methods.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples declared in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solver structs. It hands the current day's input to
// the running solver method.
type Puzzle struct {
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Input returns the puzzle input, or the sample input in sample mode. It is
// empty in sample mode if the running part has no sample.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		s, _ := p.Sample()
		return []byte(s.input)
	}
	return p.input
}

// Text returns the puzzle input as a string.
func (p *Puzzle) Text() string {
	return string(p.Input())
}

// Sample returns the sample of the running part.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
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

// extractMethods collects the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s has type %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
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
	return days, nil
}

var (
	flagCurDay int
	flagPart   string
	flagSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.StringVar(&flagPart, "part", "", "part to run; empty runs every part")
	flag.BoolVar(&flagSample, "sample", false, "run the embedded samples instead of the input")
}

var initFlags = sync.OnceFunc(flag.Parse)

// options selects what run executes.
type options struct {
	day    int    // -1 means every day, only valid in sample mode
	part   string // empty means every part
	sample bool
	input  string // path of the input; empty or "-" is stdin
}

// Run is the entry point of a solver binary. slvr must be a pointer to a
// struct embedding *Puzzle with methods named D{day}p{part}; src is the
// source of the file declaring them, from which the samples are read.
//
// The answer of each selected part is written to stdout, one per line.
func Run(year int, src []byte, slvr any) {
	initFlags()
	opts := options{
		day:    flagCurDay,
		part:   flagPart,
		sample: flagSample,
		input:  flag.Arg(0),
	}
	if err := run(os.Stdout, os.Stdin, year, src, slvr, opts); err != nil {
		log.Fatal(err)
	}
}

// CheckSamples runs every part of slvr against its sample in src, writing
// one line per passing part to w. It returns an error on the first part
// whose answer differs.
func CheckSamples(w io.Writer, src []byte, slvr any) error {
	return run(w, nil, 0, src, slvr, options{day: -1, sample: true})
}

func run(w io.Writer, stdin io.Reader, year int, src []byte, slvr any, opts options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	p := &Puzzle{samples: samples}
	pf := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !pf.IsValid() || pf.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("%T does not embed *aoc.Puzzle", slvr)
	}
	pf.Set(reflect.ValueOf(p))

	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if opts.day == -1 {
		if !opts.sample {
			return fmt.Errorf("no day selected; use -day or -sample")
		}
		dayNums := maps.Keys(days)
		slices.Sort(dayNums)
		for _, d := range dayNums {
			if err := runDay(w, p, days[d], opts); err != nil {
				return err
			}
		}
		return nil
	}

	d, ok := days[opts.day]
	if !ok {
		return fmt.Errorf("%d: no day %d", year, opts.day)
	}
	if !opts.sample {
		p.input, err = readInput(stdin, opts.input)
		if err != nil {
			return err
		}
	}
	return runDay(w, p, d, opts)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

func runDay(w io.Writer, p *Puzzle, d day, opts options) error {
	p.SampleMode = opts.sample
	ran := false
	for _, ps := range d.parts {
		if opts.part != "" && ps.Part != opts.part {
			continue
		}
		ran = true
		p.solver = ps
		if opts.sample {
			s, ok := p.Sample()
			if !ok {
				return fmt.Errorf("no sample found for %v", ps.Name)
			}
			got := fmt.Sprint(ps.fn())
			if got != s.want {
				return fmt.Errorf("day %d part %s sample: got %v, want %v", d.day, ps.Part, got, s.want)
			}
			fmt.Fprintf(w, "day %d part %s sample: %v ✅\n", d.day, ps.Part, got)
			continue
		}
		fmt.Fprintln(w, ps.fn())
	}
	if !ran {
		return fmt.Errorf("day %d has no part %q", d.day, opts.part)
	}
	return nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
