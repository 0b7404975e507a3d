// Package verify runs the model's algebraic invariants as a suite of named
// checks. Checks run concurrently against one shared move table; each owns
// its own seeded generator so a run is reproducible for a given seed.
package verify

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/permcube/internal/cycles"
	"github.com/SeamusWaldron/permcube/internal/facelet"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/orientation"
	"github.com/SeamusWaldron/permcube/internal/perm"
	"github.com/SeamusWaldron/permcube/internal/r4"
	"github.com/SeamusWaldron/permcube/internal/scramble"
	"github.com/SeamusWaldron/permcube/pkg/types"
)

// ErrNilTable is returned when Run is called without a move table.
var ErrNilTable = errors.New("verify: nil move table")

// Config controls a run.
type Config struct {
	Trials    int     // random trials per randomized check
	MaxLength int     // longest random sequence
	Seed      uint32  // base seed; each check derives its own
	Epsilon   float64 // float tolerance for r4 checks
}

// DefaultConfig returns the settings used when the CLI is given no flags.
func DefaultConfig() Config {
	return Config{Trials: 200, MaxLength: 28, Seed: 0xc0ffee, Epsilon: 1e-8}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Trials <= 0 {
		c.Trials = d.Trials
	}
	if c.MaxLength <= 0 {
		c.MaxLength = d.MaxLength
	}
	if c.Epsilon <= 0 {
		c.Epsilon = d.Epsilon
	}
	return c
}

// Result is the outcome of one check.
type Result struct {
	Name     string        `json:"name" yaml:"name"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Detail   string        `json:"detail,omitempty" yaml:"detail,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report collects every check of a run in suite order.
type Report struct {
	RunID   uuid.UUID `json:"run_id" yaml:"run_id"`
	Config  Config    `json:"config" yaml:"config"`
	Results []Result  `json:"results" yaml:"results"`
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failed returns the failing results.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// env is shared, read-only state handed to every check.
type env struct {
	tbl   *moves.Table
	model *orientation.Model
	cfg   Config
}

type check struct {
	name string
	run  func(ctx context.Context, e *env, g *scramble.Generator) error
}

// Checks lists the suite names in run order.
func Checks() []string {
	names := make([]string, len(suite))
	for i, c := range suite {
		names[i] = c.name
	}
	return names
}

var suite = []check{
	{"generator-matches-geometry", checkGenerator},
	{"quarter-laws", checkQuarterLaws},
	{"inverse-law", checkInverseLaw},
	{"orientation-conservation", checkOrientation},
	{"bucket-sum", checkBuckets},
	{"r4-rotations", checkRotations},
	{"slab-alpha", checkSlab},
}

// Run executes the suite. A failing check is recorded in the report, not
// returned; the error is non-nil only for setup failures or cancellation.
func Run(ctx context.Context, tbl *moves.Table, cfg Config) (*Report, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	cfg = cfg.withDefaults()
	model, err := orientation.NewModel(tbl)
	if err != nil {
		return nil, fmt.Errorf("verify: orientation model: %w", err)
	}
	e := &env{tbl: tbl, model: model, cfg: cfg}

	results := make([]Result, len(suite))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range suite {
		g.Go(func() error {
			start := time.Now()
			cerr := c.run(gctx, e, scramble.New(deriveSeed(cfg.Seed, c.name)))
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			res := Result{Name: c.name, Passed: cerr == nil, Duration: time.Since(start)}
			if cerr != nil {
				res.Detail = cerr.Error()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Report{RunID: uuid.New(), Config: cfg, Results: results}, nil
}

func deriveSeed(base uint32, name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return base ^ h.Sum32()
}

func checkGenerator(_ context.Context, e *env, _ *scramble.Generator) error {
	for _, f := range types.Faces {
		fast, err := e.tbl.Quarter(f)
		if err != nil {
			return err
		}
		geo, err := facelet.Quarter(f)
		if err != nil {
			return err
		}
		if !perm.Equal(fast, geo) {
			return fmt.Errorf("face %s: ring/belt quarter differs from geometric quarter", f)
		}
	}
	return nil
}

func checkQuarterLaws(_ context.Context, e *env, _ *scramble.Generator) error {
	for _, f := range types.Faces {
		q, err := e.tbl.Quarter(f)
		if err != nil {
			return err
		}
		if n := perm.Moved(q); n != 20 {
			return fmt.Errorf("face %s: quarter moves %d slots, want 20", f, n)
		}
		q4, err := perm.Power(q, 4)
		if err != nil {
			return err
		}
		if !perm.IsIdentity(q4) {
			return fmt.Errorf("face %s: quarter^4 is not identity", f)
		}
		d, err := e.tbl.Double(f)
		if err != nil {
			return err
		}
		qq, err := perm.Compose(q, q)
		if err != nil {
			return err
		}
		if !perm.Equal(d, qq) {
			return fmt.Errorf("face %s: double differs from quarter twice", f)
		}
		p, err := e.tbl.Prime(f)
		if err != nil {
			return err
		}
		qp, err := perm.Compose(q, p)
		if err != nil {
			return err
		}
		if !perm.IsIdentity(qp) {
			return fmt.Errorf("face %s: quarter then prime is not identity", f)
		}
	}
	return nil
}

func checkInverseLaw(ctx context.Context, e *env, g *scramble.Generator) error {
	for trial := 0; trial < e.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq := g.Sequence(g.RandomLength(e.cfg.MaxLength))
		p, err := e.tbl.Sequence(seq)
		if err != nil {
			return err
		}
		inv, err := perm.Invert(p)
		if err != nil {
			return err
		}
		c, err := perm.Compose(p, inv)
		if err != nil {
			return err
		}
		if !perm.IsIdentity(c) {
			return fmt.Errorf("trial %d: p * p^-1 is not identity for %s", trial, types.FormatMoves(seq))
		}
		back, err := e.tbl.Sequence(append(seq, scramble.Invert(seq)...))
		if err != nil {
			return err
		}
		if !perm.IsIdentity(back) {
			return fmt.Errorf("trial %d: sequence then inverse sequence is not identity for %s", trial, types.FormatMoves(seq))
		}
	}
	return nil
}

func checkOrientation(ctx context.Context, e *env, g *scramble.Generator) error {
	for trial := 0; trial < e.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq := g.Sequence(g.RandomLength(e.cfg.MaxLength))
		s, err := e.model.ApplySequence(seq, orientation.Solved())
		if err != nil {
			return err
		}
		if err := orientation.Check(s); err != nil {
			return fmt.Errorf("trial %d (%s): %w", trial, types.FormatMoves(seq), err)
		}
		s, err = e.model.ApplySequence(scramble.Invert(seq), s)
		if err != nil {
			return err
		}
		if !s.IsSolved() {
			return fmt.Errorf("trial %d: inverse sequence left orientation %s", trial, s)
		}
	}
	return nil
}

func checkBuckets(ctx context.Context, e *env, g *scramble.Generator) error {
	for trial := 0; trial < e.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq := g.Sequence(g.RandomLength(e.cfg.MaxLength))
		p, err := e.tbl.Sequence(seq)
		if err != nil {
			return err
		}
		cs, err := cycles.Decompose(p, true)
		if err != nil {
			return err
		}
		if n := cycles.SumBucketSizes(cycles.BucketByLength(cs)); n != perm.Size {
			return fmt.Errorf("trial %d: bucket sizes sum to %d, want %d", trial, n, perm.Size)
		}
	}
	return nil
}

var planePairs = [][2]r4.Axis{
	{r4.X, r4.Y}, {r4.X, r4.Z}, {r4.X, r4.W},
	{r4.Y, r4.Z}, {r4.Y, r4.W}, {r4.Z, r4.W},
}

// angle draws a reproducible angle in [-2π, 2π).
func angle(g *scramble.Generator) float64 {
	const steps = 1 << 16
	return (float64(g.Intn(steps))/steps*2 - 1) * 2 * math.Pi
}

func checkRotations(ctx context.Context, e *env, g *scramble.Generator) error {
	eps := e.cfg.Epsilon
	for trial := 0; trial < e.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		pl := planePairs[g.Intn(len(planePairs))]
		th := angle(g)
		m, err := r4.RotPlane(pl[0], pl[1], th)
		if err != nil {
			return err
		}
		if !r4.IsOrthonormal4(m, eps) {
			return fmt.Errorf("R_%s%s(%.6f) is not orthonormal", pl[0], pl[1], th)
		}
		if d := r4.Det4(m); math.Abs(d-1) > eps {
			return fmt.Errorf("R_%s%s(%.6f) has det %.9f", pl[0], pl[1], th, d)
		}
		back, err := r4.RotPlane(pl[0], pl[1], -th)
		if err != nil {
			return err
		}
		if !r4.ApproxEqual4(r4.Mul4(m, back), r4.Identity4(), eps) {
			return fmt.Errorf("R_%s%s(%.6f) * R(-θ) is not identity", pl[0], pl[1], th)
		}
	}
	return nil
}

func checkSlab(ctx context.Context, e *env, g *scramble.Generator) error {
	for trial := 0; trial < e.cfg.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w0 := angle(g) / math.Pi
		half := float64(1+g.Intn(1000)) / 500
		if a := r4.SlabAlpha(w0, w0, half); a != 1 {
			return fmt.Errorf("alpha at centre %.4f is %v, want 1", w0, a)
		}
		if a := r4.SlabAlpha(w0+half, w0, half); a > 1e-9 {
			return fmt.Errorf("alpha at edge of half-width %.4f is %v, want 0", half, a)
		}
		d := half * float64(g.Intn(1000)) / 1000
		lo, hi := r4.SlabAlpha(w0-d, w0, half), r4.SlabAlpha(w0+d, w0, half)
		if math.Abs(lo-hi) > 1e-9 {
			return fmt.Errorf("alpha not symmetric at distance %.4f: %v vs %v", d, lo, hi)
		}
		if hi < 0 || hi > 1 {
			return fmt.Errorf("alpha %v out of [0,1]", hi)
		}
	}
	return nil
}
