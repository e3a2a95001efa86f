package linalg

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/cwbudde/algo-optkit/grid"
)

// canonicalSeed returns the canonical 3x3 starting vector used by the
// reference fixtures (uniform [0,1) draws from a fixed seed).
func canonicalSeed() *grid.Grid {
	return grid.FromRows([][]float64{
		{0.417022004702574, 0.7203244934421581, 0.00011437481734488664},
		{0.30233257263183977, 0.14675589081711304, 0.092338594768797799},
		{0.1862602113776709, 0.34556072704304774, 0.39676747423066994},
	})
}

// gramOperator maps x to x.x^T, a symmetric positive semi-definite
// operator on square grids.
func gramOperator() Operator {
	return OperatorFunc(func(x *grid.Grid) *grid.Grid {
		out := grid.New(x.Rows, x.Rows)
		for i := 0; i < x.Rows; i++ {
			for j := 0; j < x.Rows; j++ {
				var acc float64
				for k := 0; k < x.Cols; k++ {
					acc += x.At(i, k) * x.At(j, k)
				}

				out.Set(i, j, acc)
			}
		}

		return out
	})
}

func TestPowerMethodConverged(t *testing.T) {
	pm := NewPowerMethod(gramOperator(), 3, 3, WithInitialVector(canonicalSeed()))

	if !pm.Converged() {
		t.Fatal("estimator did not converge within the default budget")
	}

	if want := 0.90429242629600837; math.Abs(pm.SpecRad()-want) > 1e-8 {
		t.Errorf("SpecRad = %.17g, want %.17g", pm.SpecRad(), want)
	}

	if want := 1.1058369736612865; math.Abs(pm.InvSpecRad()-want) > 1e-8 {
		t.Errorf("InvSpecRad = %.17g, want %.17g", pm.InvSpecRad(), want)
	}

	if pm.InvSpecRad() != 1/pm.SpecRad() {
		t.Error("InvSpecRad must equal 1/SpecRad to floating precision")
	}

	if pm.Iterations() != 4 {
		t.Errorf("Iterations = %d, want 4", pm.Iterations())
	}
}

func TestPowerMethodSingleIteration(t *testing.T) {
	pm := NewPowerMethod(gramOperator(), 3, 3,
		WithInitialVector(canonicalSeed()), WithoutAutoRun())

	if pm.Iterations() != 0 || pm.Converged() {
		t.Fatal("estimator iterated despite WithoutAutoRun")
	}

	pm.Converge(1)

	if pm.Converged() {
		t.Fatal("estimator cannot converge in a single iteration from this seed")
	}

	if want := 0.92048833577059219; math.Abs(pm.SpecRad()-want) > 1e-8 {
		t.Errorf("SpecRad = %.17g, want %.17g", pm.SpecRad(), want)
	}

	if pm.InvSpecRad() != 1/pm.SpecRad() {
		t.Error("InvSpecRad must equal 1/SpecRad to floating precision")
	}
}

func TestPowerMethodResume(t *testing.T) {
	pm := NewPowerMethod(gramOperator(), 3, 3,
		WithInitialVector(canonicalSeed()), WithoutAutoRun())

	// One iteration at a time must land at the same estimate as a single
	// run with the full budget.
	for i := 0; i < 20 && !pm.Converged(); i++ {
		pm.Converge(1)
	}

	oneShot := NewPowerMethod(gramOperator(), 3, 3, WithInitialVector(canonicalSeed()))

	if !pm.Converged() {
		t.Fatal("incremental estimator did not converge")
	}

	if pm.SpecRad() != oneShot.SpecRad() {
		t.Errorf("incremental %.17g differs from one-shot %.17g", pm.SpecRad(), oneShot.SpecRad())
	}

	// Once converged, further budgets are no-ops.
	before := pm.SpecRad()
	pm.Converge(10)

	if pm.SpecRad() != before || pm.Iterations() != oneShot.Iterations() {
		t.Error("Converge after convergence must not change the estimate")
	}
}

func TestPowerMethodSeededReproducible(t *testing.T) {
	a := NewPowerMethod(gramOperator(), 3, 3, WithRand(rand.New(rand.NewSource(99))))
	b := NewPowerMethod(gramOperator(), 3, 3, WithRand(rand.New(rand.NewSource(99))))

	if a.SpecRad() != b.SpecRad() || a.Iterations() != b.Iterations() {
		t.Error("same seed must reproduce the identical iteration sequence")
	}
}

func TestPowerMethodDefaultDeterministic(t *testing.T) {
	a := NewPowerMethod(gramOperator(), 3, 3)
	b := NewPowerMethod(gramOperator(), 3, 3)

	if a.SpecRad() != b.SpecRad() {
		t.Error("default construction must be deterministic")
	}
}

func TestPowerMethodProgress(t *testing.T) {
	var buf strings.Builder

	NewPowerMethod(gramOperator(), 3, 3,
		WithInitialVector(canonicalSeed()), WithProgress(&buf))

	out := buf.String()
	if !strings.Contains(out, "converged after 4 iterations") {
		t.Errorf("progress output missing convergence report:\n%s", out)
	}
}

func TestPowerMethodBudgetExhaustion(t *testing.T) {
	var buf strings.Builder

	pm := NewPowerMethod(gramOperator(), 3, 3,
		WithInitialVector(canonicalSeed()), WithMaxIter(2), WithProgress(&buf))

	// Non-convergence is a degraded but valid result, not an error.
	if pm.Converged() {
		t.Fatal("two iterations cannot reach the tolerance from this seed")
	}

	if pm.SpecRad() <= 0 {
		t.Errorf("SpecRad = %v, want a positive estimate", pm.SpecRad())
	}

	if !strings.Contains(buf.String(), "budget exhausted") {
		t.Error("progress output missing exhaustion report")
	}
}

func TestPowerMethodTightTolerance(t *testing.T) {
	loose := NewPowerMethod(gramOperator(), 3, 3, WithInitialVector(canonicalSeed()))
	tight := NewPowerMethod(gramOperator(), 3, 3,
		WithInitialVector(canonicalSeed()), WithTolerance(1e-12), WithMaxIter(200))

	if !tight.Converged() {
		t.Fatal("tight tolerance did not converge within 200 iterations")
	}

	if tight.Iterations() <= loose.Iterations() {
		t.Error("tighter tolerance should need more iterations")
	}
}
