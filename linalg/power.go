package linalg

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-optkit/grid"
)

// Operator is the narrow capability PowerMethod needs from a linear
// operator: a mapping from a grid to a grid of the same shape. PowerMethod
// never inspects the operator beyond calling Apply.
type Operator interface {
	Apply(x *grid.Grid) *grid.Grid
}

// OperatorFunc adapts a plain function to the [Operator] interface.
type OperatorFunc func(*grid.Grid) *grid.Grid

// Apply calls f(x).
func (f OperatorFunc) Apply(x *grid.Grid) *grid.Grid {
	return f(x)
}

// PowerMethod defaults.
const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 20

	// defaultSeed makes estimators reproducible when the caller does not
	// supply a random source. Use WithRand for independent draws.
	defaultSeed = 1
)

type pmConfig struct {
	initial  *grid.Grid
	rng      *rand.Rand
	autoRun  bool
	maxIter  int
	tol      float64
	progress io.Writer
}

// Option configures a PowerMethod estimator.
type Option func(*pmConfig)

// WithInitialVector supplies the starting eigenvector estimate instead of
// a random draw. The vector is copied; its shape takes precedence over
// the rows/cols arguments of NewPowerMethod.
func WithInitialVector(x *grid.Grid) Option {
	return func(cfg *pmConfig) { cfg.initial = x }
}

// WithRand supplies the random source used to draw the initial vector.
// Seeding the source makes the entire iteration sequence reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *pmConfig) { cfg.rng = rng }
}

// WithoutAutoRun constructs the estimator without iterating; call
// [PowerMethod.Converge] to advance it.
func WithoutAutoRun() Option {
	return func(cfg *pmConfig) { cfg.autoRun = false }
}

// WithMaxIter sets the iteration budget used by the auto-run pass.
func WithMaxIter(n int) Option {
	return func(cfg *pmConfig) { cfg.maxIter = n }
}

// WithTolerance sets the relative convergence tolerance for the
// spectral-radius estimate.
func WithTolerance(tol float64) Option {
	return func(cfg *pmConfig) { cfg.tol = tol }
}

// WithProgress enables per-iteration progress reporting to w.
func WithProgress(w io.Writer) Option {
	return func(cfg *pmConfig) { cfg.progress = w }
}

// PowerMethod estimates the spectral radius (dominant eigenvalue
// magnitude) of a linear operator by power iteration. The estimator is
// resumable: each Converge call advances from the current state with a
// fresh iteration budget. Not safe for concurrent use.
type PowerMethod struct {
	op        Operator
	x         *grid.Grid
	specRad   float64
	iter      int
	converged bool
	tol       float64
	progress  io.Writer
}

// NewPowerMethod creates an estimator for op acting on rows x cols grids.
// Unless [WithoutAutoRun] is given, it immediately iterates with the
// configured budget (default 20); non-convergence within the budget is
// not an error and leaves a usable, refinable estimate.
func NewPowerMethod(op Operator, rows, cols int, opts ...Option) *PowerMethod {
	cfg := pmConfig{
		autoRun: true,
		maxIter: DefaultMaxIter,
		tol:     DefaultTolerance,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	var x *grid.Grid

	switch {
	case cfg.initial != nil:
		x = cfg.initial.Clone()
	case cfg.rng != nil:
		x = grid.Random(rows, cols, cfg.rng)
	default:
		x = grid.Random(rows, cols, rand.New(rand.NewSource(defaultSeed)))
	}

	p := &PowerMethod{
		op:       op,
		x:        x,
		tol:      cfg.tol,
		progress: cfg.progress,
	}

	if cfg.autoRun {
		p.Converge(cfg.maxIter)
	}

	return p
}

// Converge advances the estimator by at most maxIter iterations, stopping
// early once the relative change of the spectral-radius estimate falls
// below the tolerance. It returns the current estimate; once converged,
// further calls are no-ops.
func (p *PowerMethod) Converge(maxIter int) float64 {
	if p.converged || maxIter <= 0 {
		return p.specRad
	}

	normOld := p.x.Norm()

	for i := 0; i < maxIter; i++ {
		p.x = p.op.Apply(p.x).Scale(1 / normOld)
		normNew := p.x.Norm()

		p.iter++
		p.specRad = normNew

		if math.Abs(normNew-normOld)/normOld < p.tol {
			p.converged = true
			p.logf("power method converged after %d iterations: spec_rad=%.12g", p.iter, p.specRad)

			return p.specRad
		}

		p.logf("power method iteration %d: spec_rad=%.12g", p.iter, normNew)
		normOld = normNew
	}

	p.logf("power method budget exhausted after %d iterations: spec_rad=%.12g", p.iter, p.specRad)

	return p.specRad
}

// SpecRad returns the current spectral-radius estimate.
func (p *PowerMethod) SpecRad() float64 {
	return p.specRad
}

// InvSpecRad returns 1 / SpecRad. Before any iteration has run the
// estimate is zero and the inverse is +Inf.
func (p *PowerMethod) InvSpecRad() float64 {
	return 1 / p.specRad
}

// Iterations returns the total number of operator applications so far.
func (p *PowerMethod) Iterations() int {
	return p.iter
}

// Converged reports whether the estimate has met the tolerance.
func (p *PowerMethod) Converged() bool {
	return p.converged
}

func (p *PowerMethod) logf(format string, args ...any) {
	if p.progress == nil {
		return
	}

	fmt.Fprintf(p.progress, format+"\n", args...)
}
