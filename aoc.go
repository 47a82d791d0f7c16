// Package aoc is a small Advent of Code toolkit: a generic grid, an indexed
// min-heap, a height-map shortest-path engine, and a runner that checks each
// puzzle part against the worked example in its doc comment before solving
// the real input.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/exp/maps"
)

var (
	// ErrSampleMismatch is returned when a part's answer to its worked
	// example is not the expected one. The real input is then not tried.
	ErrSampleMismatch = errors.New("aoc: wrong answer to sample")

	// ErrNoSample is returned for a part without a want= doc comment.
	ErrNoSample = errors.New("aoc: no sample")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample reads a comment of the form
//
//	want=<answer>
//
//	<input lines>
//
// in either comment style. The input may be left out.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples returns the worked examples in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the one before it.
func extractSamples(src []byte) (map[string]sample, error) {
	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("aoc: reading samples: %w", err)
	}
	samples := map[string]sample{}
	var prev string
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		s, ok := docSample(fn.Doc)
		if !ok {
			continue
		}
		s.input = Or(s.input, prev)
		prev = s.input
		samples[fn.Name.Name] = s
	}
	return samples, nil
}

func docSample(doc *ast.CommentGroup) (sample, bool) {
	for _, c := range doc.List {
		if s, ok := parseSample(c.Text); ok {
			return s, true
		}
	}
	return sample{}, false
}

// A part is one D{day}p{part} method of a solver.
type part struct {
	name  string // method name, the key of its sample
	num   string
	solve func() any
}

var partRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the D{day}p{part} methods of slvr, a pointer to a
// struct, grouped by day and sorted by part.
func extractMethods(slvr any) (map[int][]part, error) {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("aoc: solver is %T, want a pointer to a struct", slvr)
	}
	t := v.Type()
	days := map[int][]part{}
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		m := partRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("aoc: %s is %v, want func() any", name, t.Method(i).Type)
		}
		d := Int(m[1])
		days[d] = append(days[d], part{name: name, num: m[2], solve: fn})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b part) int {
			return strings.Compare(a.num, b.num)
		})
	}
	return days, nil
}

// Config controls Solve. The zero value runs every part of every day, first
// on its sample and then on the real input, and reports to stdout.
type Config struct {
	Day        int    // only this day; 0 runs all of them
	Part       string // only this part; "" runs all of them
	OnlySample bool
	SkipSample bool
	Debug      bool // let Puzzle.Debugf print while solving samples

	Out io.Writer // os.Stdout when nil

	// Where and how real inputs are found.
	CacheDir string       // inputs are cached as <CacheDir>/<year>/<day>.input
	BaseURL  string       // https://adventofcode.com when empty
	Client   *http.Client // cleanhttp.DefaultClient() when nil
	EnvFile  string       // dotenv file checked for AOC_SESSION; ".env" when empty
	KeyFile  string       // session key file; ~/keys/aoc.session when empty
}

func (c *Config) setDefaults() {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://adventofcode.com"
	}
	if c.Client == nil {
		c.Client = cleanhttp.DefaultClient()
	}
	if c.EnvFile == "" {
		c.EnvFile = ".env"
	}
	if c.KeyFile == "" {
		c.KeyFile = sessionKeyFile
	}
}

// Result is the answer of one part to either its sample or the real input.
type Result struct {
	Day    int
	Part   string
	Sample bool
	Got    string
	Want   string // expected sample answer
	Took   time.Duration
}

// OK reports whether a sample answer matched. Real answers are always OK.
func (r Result) OK() bool {
	return !r.Sample || r.Got == r.Want
}

func (r Result) String() string {
	switch {
	case !r.Sample:
		return fmt.Sprintf("part %s: %v (took %v)", r.Part, r.Got, r.Took)
	case r.OK():
		return fmt.Sprintf("part %s sample: %v ✅ (%v)", r.Part, r.Got, r.Took)
	default:
		return fmt.Sprintf("part %s sample: %v ❌; want %v", r.Part, r.Got, r.Want)
	}
}

// Puzzle is embedded in a solver struct and gives its D{day}p{part} methods
// the input of the part being run.
type Puzzle struct {
	Year, Day  int
	SampleMode bool

	part    part
	samples map[string]sample
	inputs  *inputCache
	input   []byte // real input, loaded once per day
	debug   bool
	out     io.Writer
}

// Input returns the sample input in sample mode, and the real puzzle input
// otherwise. It panics if the real input cannot be loaded.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.samples[p.part.name].input)
	}
	return MustGet(p.realInput())
}

func (p *Puzzle) realInput() ([]byte, error) {
	if p.input == nil {
		b, err := p.inputs.get(p.Year, p.Day)
		if err != nil {
			return nil, err
		}
		p.input = b
	}
	return p.input, nil
}

// Debugf prints a line while a sample is being solved in debug mode.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.debug && p.SampleMode {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// solve runs the current part once. A failed sample is both a Result and an
// error.
func (p *Puzzle) solve(sampleMode bool) (Result, error) {
	p.SampleMode = sampleMode
	r := Result{Day: p.Day, Part: p.part.num, Sample: sampleMode}
	if sampleMode {
		s, ok := p.samples[p.part.name]
		if !ok {
			return r, fmt.Errorf("%w for %s", ErrNoSample, p.part.name)
		}
		r.Want = s.want
	} else if _, err := p.realInput(); err != nil {
		return r, err
	}

	t0 := time.Now()
	r.Got = fmt.Sprint(p.part.solve())
	r.Took = time.Since(t0).Round(time.Microsecond)
	fmt.Fprintln(p.out, r)
	if !r.OK() {
		return r, fmt.Errorf("%w: day %d part %s got %s, want %s", ErrSampleMismatch, p.Day, r.Part, r.Got, r.Want)
	}
	return r, nil
}

// runDay solves the parts of one day. A part whose sample fails is not run
// on the real input; the other parts still are.
func runDay(cfg *Config, p *Puzzle, parts []part) ([]Result, error) {
	fmt.Fprintln(cfg.Out, "Running day", p.Day)
	var (
		results []Result
		errs    []error
	)
	for _, pt := range parts {
		if cfg.Part != "" && pt.num != cfg.Part {
			continue
		}
		p.part = pt
		if !cfg.SkipSample {
			r, err := p.solve(true)
			results = append(results, r)
			if err != nil {
				errs = append(errs, err)
				continue
			}
		}
		if cfg.OnlySample {
			continue
		}
		r, err := p.solve(false)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

// Solve runs the days registered on slvr, a pointer to a struct embedding
// *Puzzle. src is the source file of slvr; the worked examples are read
// from its doc comments.
func Solve(year int, src []byte, slvr any, cfg Config) ([]Result, error) {
	cfg.setDefaults()
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	field := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeOf((*Puzzle)(nil)) {
		return nil, fmt.Errorf("aoc: %T does not embed *aoc.Puzzle", slvr)
	}

	nums := maps.Keys(days)
	slices.Sort(nums)
	if cfg.Day != 0 {
		if _, ok := days[cfg.Day]; !ok {
			return nil, fmt.Errorf("aoc: no solver for day %d", cfg.Day)
		}
		nums = []int{cfg.Day}
	}

	inputs := newInputCache(&cfg)
	var (
		results []Result
		errs    []error
	)
	for i, d := range nums {
		if i > 0 {
			fmt.Fprintln(cfg.Out)
		}
		p := &Puzzle{
			Year:    year,
			Day:     d,
			samples: samples,
			inputs:  inputs,
			debug:   cfg.Debug,
			out:     cfg.Out,
		}
		field.Set(reflect.ValueOf(p))
		rs, err := runDay(&cfg, p, days[d])
		results = append(results, rs...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

var flagConfig Config

func init() {
	flag.IntVar(&flagConfig.Day, "day", 0, "day to run; 0 runs all")
	flag.StringVar(&flagConfig.Part, "part", "", "part to run")
	flag.BoolVar(&flagConfig.OnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagConfig.SkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagConfig.Debug, "debug", false, "debug mode")
	flag.StringVar(&flagConfig.CacheDir, "inputs", "", "directory of cached inputs")
}

var initFlags = sync.OnceFunc(flag.Parse)

// Run is Solve configured from the command line. It exits non-zero if any
// part fails.
func Run(year int, src []byte, slvr any) {
	initFlags()
	if _, err := Solve(year, src, slvr, flagConfig); err != nil {
		log.Fatal(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
