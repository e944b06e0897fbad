package geopack

import (
	"errors"
	"math"
	"testing"

	"github.com/tsssss/geopack/integrator"
	"gonum.org/v1/gonum/floats/scalar"
)

func dipoleTracer(tilt float64) *Tracer {
	s, c := mustRecalc(Epoch{2005, 172, 17, 0, 0})
	s = s.WithTilt(tilt)
	return NewTracer(s, NewDipole(s, c), nil, ModelOptions{})
}

func TestTraceDipole(t *testing.T) {
	tr := dipoleTracer(0)
	for _, tc := range []struct {
		dir   float64
		footZ float64
	}{{1, -0.8660237935}, {-1, 0.8660237935}} {
		fl, err := tr.Trace([]float64{4, 0, 0}, tc.dir, 60, 1)
		if err != nil {
			t.Fatal(err)
		}
		if fl.Status != HitInnerBoundary {
			t.Fatalf("dir=%f: status %s", tc.dir, fl.Status)
		}
		foot := fl.Last()
		if r := norm(foot); !scalar.EqualWithinAbs(r, 1, 1e-5) {
			t.Fatalf("dir=%f: footpoint at r=%f", tc.dir, r)
		}
		if !vectorsEqualWithin(foot, []float64{0.5000010149, 0, tc.footZ}, 1e-4) {
			t.Fatalf("dir=%f: footpoint %v", tc.dir, foot)
		}
		// A dipole line of L = 4 reaches r = 1 at the latitude of 60°.
		if λ := math.Asin(foot[2]/norm(foot)) / deg2rad; !scalar.EqualWithinAbs(math.Abs(λ), 60, 1e-2) {
			t.Fatalf("dir=%f: footpoint latitude %f", tc.dir, λ)
		}
		if !vectorsEqual(fl.Points[0], []float64{4, 0, 0}) {
			t.Fatal("the line must start on the start point")
		}
		if fl.Steps != len(fl.Points)-1 {
			t.Fatalf("%d steps for %d points", fl.Steps, len(fl.Points))
		}
	}
}

func TestTraceIGRF(t *testing.T) {
	s, c := mustRecalc(Epoch{2005, 172, 17, 0, 0})
	tr := NewTracer(s, NewIGRF(s, c), NoExternal{}, ModelOptions{})
	fl, err := tr.Trace([]float64{-6, 0, 0.5}, 1, 60, 1)
	if err != nil {
		t.Fatal(err)
	}
	if fl.Status != HitInnerBoundary {
		t.Fatalf("status %s", fl.Status)
	}
	if exp := []float64{-0.852924536, -0.066145099, -0.517826768}; !vectorsEqualWithin(fl.Last(), exp, 2e-3) {
		t.Fatalf("footpoint %v, expected %v", fl.Last(), exp)
	}
}

func TestTraceOuterLimit(t *testing.T) {
	tr := dipoleTracer(0)
	for _, start := range [][]float64{{70, 0, 0}, {25, 0, 0}, {0, 45, 0}} {
		fl, err := tr.Trace(start, 1, 60, 1)
		if err != nil {
			t.Fatal(err)
		}
		if fl.Status != HitOuterLimit || fl.Steps != 0 || len(fl.Points) != 1 {
			t.Fatalf("start %v: %s after %d steps", start, fl.Status, fl.Steps)
		}
	}
}

func TestTraceBudget(t *testing.T) {
	tr := dipoleTracer(0)
	tr.MaxSteps = 3
	fl, err := tr.Trace([]float64{4, 0, 0}, 1, 60, 1)
	if !errors.Is(err, ErrTraceIncomplete) {
		t.Fatalf("expected an incomplete trace, got %v", err)
	}
	var ti *TraceIncomplete
	if !errors.As(err, &ti) || ti.Steps != 3 || !vectorsEqual(ti.Last, fl.Last()) {
		t.Fatalf("error %+v", err)
	}
	if fl.Status != StepBudgetExceeded || len(fl.Points) != 4 {
		t.Fatalf("status %s with %d points", fl.Status, len(fl.Points))
	}
}

func TestTraceInvalid(t *testing.T) {
	tr := dipoleTracer(0)
	for _, tc := range []struct {
		start          []float64
		dir, rlim, r0 float64
	}{
		{[]float64{4, 0}, 1, 60, 1},
		{[]float64{4, 0, 0}, 0, 60, 1},
		{[]float64{4, 0, 0}, 2, 60, 1},
		{[]float64{4, 0, 0}, 1, 0, 1},
		{[]float64{4, 0, 0}, 1, 60, -1},
	} {
		if _, err := tr.Trace(tc.start, tc.dir, tc.rlim, tc.r0); !errors.Is(err, ErrDomain) {
			t.Fatalf("%+v: expected a domain error, got %v", tc, err)
		}
	}
}

// flipping alternates between two perpendicular directions, so that the error estimate
// of a step never vanishes.
type flipping struct{ n int }

func (f *flipping) Field(x, y, z float64) (bx, by, bz float64) {
	f.n++
	if f.n%2 == 0 {
		return 1, 0, 0
	}
	return 0, 1, 0
}

func TestStep(t *testing.T) {
	s, c := mustRecalc(Epoch{2005, 172, 17, 0, 0})
	s = s.WithTilt(0)
	tr := NewTracer(s, NewDipole(s, c), nil, ModelOptions{})
	p := []float64{4, 0, 0}
	if _, _, err := tr.Step(p, 0.5, 0); !errors.Is(err, ErrDomain) {
		t.Fatalf("zero error: expected a domain error, got %v", err)
	}
	if _, _, err := tr.Step(p, 0.5, -1); !errors.Is(err, ErrDomain) {
		t.Fatalf("negative error: expected a domain error, got %v", err)
	}
	next, ds, err := tr.Step(p, 0.1, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	// Small steps in a smooth field are grown.
	if !scalar.EqualWithinAbs(ds, 0.15, 1e-12) {
		t.Fatalf("next step %f", ds)
	}
	// Antiparallel to the northward equatorial field.
	if next[2] >= 0 || !scalar.EqualWithinAbs(norm([]float64{next[0] - 4, next[1], next[2]}), 0.1, 1e-3) {
		t.Fatalf("step to %v", next)
	}

	tr = NewTracer(s, &flipping{}, nil, ModelOptions{})
	_, _, err = tr.Step(p, 0.5, 1e-300)
	if !errors.Is(err, ErrConvergence) || !errors.Is(err, integrator.ErrMaxRetries) {
		t.Fatalf("expected a convergence error, got %v", err)
	}
	var ce *ConvergenceError
	if !errors.As(err, &ce) || ce.Iterations != integrator.DefaultMaxRetries {
		t.Fatalf("error %+v", err)
	}
}

func TestRHand(t *testing.T) {
	tr := dipoleTracer(0.3)
	r1, r2, r3 := tr.RHand(3, 1, -2, 0.25)
	if !scalar.EqualWithinAbs(math.Sqrt(r1*r1+r2*r2+r3*r3), 0.25, 1e-14) {
		t.Fatal("RHand did not scale the field")
	}
	bx, by, bz := tr.Internal.Field(3, 1, -2)
	if bx*r1+by*r2+bz*r3 <= 0 {
		t.Fatal("RHand not along the field for a positive length")
	}
	// The external field is added to the internal one.
	tr.External = ExternalFunc(func(x, y, z float64, opts ModelOptions) (float64, float64, float64) {
		return -bx, -by, -bz + 1
	})
	if r1, r2, r3 = tr.RHand(3, 1, -2, 2); !vectorsEqual([]float64{r1, r2, r3}, []float64{0, 0, 2}) {
		t.Fatalf("RHand with external field (%f, %f, %f)", r1, r2, r3)
	}
}

func TestTraceMany(t *testing.T) {
	tr := dipoleTracer(0.2)
	starts := [][]float64{{4, 0, 0}, {-5, 1, 0.5}, {70, 0, 0}, {3, -2, 1}, {6, 0, 0}}
	results := tr.TraceMany(starts, 1, 60, 1, 2)
	if len(results) != len(starts) {
		t.Fatalf("%d results", len(results))
	}
	for i, res := range results {
		fl, err := tr.Trace(starts[i], 1, 60, 1)
		if (err == nil) != (res.Err == nil) {
			t.Fatalf("line %d: error %v vs %v", i, res.Err, err)
		}
		if res.Line.Status != fl.Status || res.Line.Steps != fl.Steps || !vectorsEqual(res.Line.Last(), fl.Last()) {
			t.Fatalf("line %d differs from a single trace", i)
		}
	}
	if HitInnerBoundary.String() != "inner" || TraceStatus(9).String() != "unknown" {
		t.Fatal("status names")
	}
}
