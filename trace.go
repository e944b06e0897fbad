package geopack

import (
	"math"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tsssss/geopack/integrator"
)

const (
	defaultTraceErr = 0.001
	defaultMaxSteps = 1000
	maxYZ2          = 1600 // y²+z² limit of the tracing box
	maxX            = 20   // sunward limit of the tracing box
)

// TraceStatus is the state of a field line trace.
type TraceStatus uint8

const (
	// Integrating means the trace has not terminated (or was interrupted by an error).
	Integrating TraceStatus = iota
	// HitInnerBoundary means the line reached the sphere r = r0 and ends at its footpoint.
	HitInnerBoundary
	// HitOuterLimit means the line left the sphere r = rlim or the tracing box.
	HitOuterLimit
	// StepBudgetExceeded means the maximum number of steps was reached.
	StepBudgetExceeded
)

func (s TraceStatus) String() string {
	switch s {
	case Integrating:
		return "integrating"
	case HitInnerBoundary:
		return "inner"
	case HitOuterLimit:
		return "outer"
	case StepBudgetExceeded:
		return "budget"
	default:
		return "unknown"
	}
}

// FieldLine is a traced field line in GSM.
type FieldLine struct {
	Points [][]float64 // from the start point to the last point, or the footpoint
	Status TraceStatus
	Steps  int
}

// Last returns the last point of the line.
func (fl *FieldLine) Last() []float64 {
	return fl.Points[len(fl.Points)-1]
}

// Tracer follows field lines in the sum of an internal and an external field model.
// A Tracer is never modified by tracing, and may be shared between goroutines as long as
// its models are.
type Tracer struct {
	Internal   InternalModel
	External   ExternalModel
	Options    ModelOptions
	Err        float64 // permissible error of each step
	MaxSteps   int
	MaxRetries int // step halvings
	logger     kitlog.Logger
}

// NewTracer returns a Tracer of the provided models. The tilt of s is forwarded to the
// external model. A nil external model traces the internal field alone.
func NewTracer(s *RotationState, in InternalModel, ex ExternalModel, opts ModelOptions) *Tracer {
	if ex == nil {
		ex = NoExternal{}
	}
	opts.Tilt = s.Tilt()
	return &Tracer{in, ex, opts, defaultTraceErr, defaultMaxSteps, integrator.DefaultMaxRetries, kitlog.NewNopLogger()}
}

// SetLogger sets the logger used for the debug records of traces.
func (t *Tracer) SetLogger(logger kitlog.Logger) {
	t.logger = kitlog.With(logger, "subsys", "trace")
}

// RHand returns the field direction at (x, y, z), scaled to the length ds3.
func (t *Tracer) RHand(x, y, z, ds3 float64) (r1, r2, r3 float64) {
	bx, by, bz := t.External.Field(x, y, z, t.Options)
	hx, hy, hz := t.Internal.Field(x, y, z)
	bx += hx
	by += hy
	bz += hz
	b := ds3 / math.Sqrt(bx*bx+by*by+bz*bz)
	return bx * b, by * b, bz * b
}

// Func implements integrator.Integrable.
func (t *Tracer) Func(s []float64, h float64) []float64 {
	r1, r2, r3 := t.RHand(s[0], s[1], s[2], h)
	return []float64{r1, r2, r3}
}

// Step makes one adaptive step of nominal length ds from p along the field, antiparallel to
// it when ds > 0. Returns the new position and the step length to use next.
func (t *Tracer) Step(p []float64, ds, errin float64) ([]float64, float64, error) {
	if errin <= 0 {
		return nil, ds, domainErr("step", "permissible error must be positive, got %g", errin)
	}
	if err := checkVec("step", p, Forward); err != nil {
		return nil, ds, err
	}
	retries := t.MaxRetries
	if retries <= 0 {
		retries = integrator.DefaultMaxRetries
	}
	m := integrator.NewMerson(errin, retries, t)
	next, ds, _, err := m.Step(p, ds)
	if err != nil {
		return nil, ds, &ConvergenceError{Op: "step", Iterations: retries, Err: err}
	}
	return next, ds, nil
}

// Trace follows the field line from start until it crosses the sphere r = r0 from the
// outside, leaves the sphere r = rlim or the box y²+z² < 1600, x < 20, or the step budget is
// exhausted. dir = 1 traces antiparallel to the field (e.g. from north to south), dir = -1
// parallel to it. The footpoint on r = r0 is found by linear interpolation between the last
// two points.
// When the budget is exhausted the partial line is returned with a TraceIncomplete error.
func (t *Tracer) Trace(start []float64, dir, rlim, r0 float64) (*FieldLine, error) {
	if err := checkVec("trace", start, Forward); err != nil {
		return nil, err
	}
	if dir != 1 && dir != -1 {
		return nil, domainErr("trace", "direction must be 1 or -1, got %g", dir)
	}
	if rlim <= 0 || r0 <= 0 {
		return nil, domainErr("trace", "limits must be positive, got rlim=%g r0=%g", rlim, r0)
	}
	maxSteps := t.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	errin := t.Err
	if errin == 0 {
		errin = defaultTraceErr
	}

	x, y, z := start[0], start[1], start[2]
	fl := &FieldLine{Points: [][]float64{{x, y, z}}}
	ds := 0.5 * dir
	// The sign of ad follows the initial radial direction of motion, so that rr starts as
	// the distance of a fictitious previous point.
	r1, r2, r3 := t.RHand(x, y, z, -ds/3)
	ad := 0.01
	if x*r1+y*r2+z*r3 < 0 {
		ad = -0.01
	}
	rr := math.Sqrt(x*x+y*y+z*z) + ad
	xr, yr, zr := x, y, z

	for {
		ryz := y*y + z*z
		r := math.Sqrt(x*x + ryz)
		if r > rlim || ryz > maxYZ2 || x > maxX {
			fl.Status = HitOuterLimit
			break
		}
		if r < r0 && rr > r {
			f := (r0 - r) / (rr - r)
			foot := []float64{x - (x-xr)*f, y - (y-yr)*f, z - (z-zr)*f}
			if fl.Steps > 0 {
				fl.Points[len(fl.Points)-1] = foot
			} else {
				fl.Points = append(fl.Points, foot)
			}
			fl.Status = HitInnerBoundary
			break
		}
		if fl.Steps >= maxSteps {
			fl.Status = StepBudgetExceeded
			level.Debug(t.logger).Log("status", fl.Status, "steps", fl.Steps, "last", fl.Last())
			return fl, &TraceIncomplete{Steps: fl.Steps, Last: fl.Last()}
		}
		// Inside r = 5 and moving inward the step is reduced as the inner boundary gets
		// closer, and the previous point is logged for the footpoint interpolation.
		if r < rr && r <= 5 {
			if r >= 3 {
				ds = dir
			} else {
				fc := 0.2
				if r-r0 < 0.05 {
					fc = 0.05
				}
				ds = dir * fc * (r - r0 + 0.2)
			}
			xr, yr, zr = x, y, z
		}
		rr = r
		p, next, err := t.Step([]float64{x, y, z}, ds, errin)
		if err != nil {
			level.Debug(t.logger).Log("status", "failed", "steps", fl.Steps, "err", err)
			return fl, err
		}
		ds = next
		x, y, z = p[0], p[1], p[2]
		fl.Points = append(fl.Points, p)
		fl.Steps++
	}
	level.Debug(t.logger).Log("status", fl.Status, "steps", fl.Steps, "last", fl.Last())
	return fl, nil
}

// TraceResult is the outcome of one of the traces of TraceMany.
type TraceResult struct {
	Line *FieldLine
	Err  error
}

// TraceMany traces a field line from each start point on at most workers goroutines (all
// CPUs if workers <= 0). Results are in the order of the start points.
func (t *Tracer) TraceMany(starts [][]float64, dir, rlim, r0 float64, workers int) []TraceResult {
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	results := make([]TraceResult, len(starts))
	idx := make(chan int, len(starts))
	for i := range starts {
		idx <- i
	}
	close(idx)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				fl, err := t.Trace(starts[i], dir, rlim, r0)
				results[i] = TraceResult{fl, err}
			}
		}()
	}
	wg.Wait()
	return results
}
