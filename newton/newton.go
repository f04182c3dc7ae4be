package newton

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsolve/gaussjordan"
)

// resolve applies defaults to zero fields and rejects invalid values.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts == nil {
		return o, nil
	}

	bad := func(v float64) bool { return v < 0 || math.IsNaN(v) || math.IsInf(v, 0) }
	switch {
	case bad(opts.GradStep):
		return o, fmt.Errorf("%w: GradStep=%v", ErrBadOptions, opts.GradStep)
	case bad(opts.HessStep):
		return o, fmt.Errorf("%w: HessStep=%v", ErrBadOptions, opts.HessStep)
	case bad(opts.Epsilon):
		return o, fmt.Errorf("%w: Epsilon=%v", ErrBadOptions, opts.Epsilon)
	case opts.Iterations < 0:
		return o, fmt.Errorf("%w: Iterations=%d", ErrBadOptions, opts.Iterations)
	}

	if opts.GradStep > 0 {
		o.GradStep = opts.GradStep
	}
	if opts.HessStep > 0 {
		o.HessStep = opts.HessStep
	}
	if opts.Iterations > 0 {
		o.Iterations = opts.Iterations
	}
	if opts.Epsilon > 0 {
		o.Epsilon = opts.Epsilon
	}

	return o, nil
}

// validate checks the arguments shared by Step and Minimize.
func validate(f Func, x []float64, opts *Options) (Options, error) {
	if f == nil {
		return Options{}, ErrNilFunc
	}
	if len(x) == 0 {
		return Options{}, ErrEmptyPoint
	}

	return resolve(opts)
}

// Step computes one Newton displacement δ solving H(x)·δ = −∇f(x).
// MAIN DESCRIPTION:
//   - Finite-difference gradient and Hessian at x, then Gauss-Jordan elimination.
//
// Errors:
//   - ErrNilFunc, ErrEmptyPoint, ErrBadOptions for invalid arguments.
//   - ErrSingularHessian when the system is underdetermined or inconsistent.
//   - gaussjordan.ErrNonFinite (wrapped) when f produced NaN/±Inf near x.
//
// Complexity:
//   - O(n²) evaluations of f plus O(n³) arithmetic.
func Step(f Func, x []float64, opts *Options) ([]float64, error) {
	o, err := validate(f, x, opts)
	if err != nil {
		return nil, newtonErrorf(opStep, err)
	}
	delta, err := step(f, x, o)
	if err != nil {
		return nil, newtonErrorf(opStep, err)
	}

	return delta, nil
}

func step(f Func, x []float64, o Options) ([]float64, error) {
	grad := Gradient(f, x, o.GradStep)
	hess := Hessian(f, x, o.HessStep)

	rhs := make([]float64, len(grad))
	for i, g := range grad {
		rhs[i] = -g
	}

	out, _ := gaussjordan.Solve(hess, rhs,
		gaussjordan.WithEpsilon(o.Epsilon),
		gaussjordan.WithNoHeader(),
		gaussjordan.WithNoSnapshots(),
	)
	switch out.Kind {
	case gaussjordan.Unique:
		return out.Solution, nil
	case gaussjordan.InputError:
		return nil, out.Err
	default:
		return nil, fmt.Errorf("%w: system is %s (rank %d of %d)",
			ErrSingularHessian, out.Kind, out.Rank, len(x))
	}
}

// Minimize runs up to opts.Iterations Newton steps from x0.
//
// Behavior highlights:
//   - x0 is copied; Path[0] is that copy and every applied step appends one entry.
//   - A singular Hessian ends the run early with Result.Singular set and a nil
//     error: the last iterate is kept, matching a zero step.
//   - Any other failure (non-finite objective) returns the error.
//
// Complexity:
//   - Iterations × Step.
func Minimize(f Func, x0 []float64, opts *Options) (Result, error) {
	o, err := validate(f, x0, opts)
	if err != nil {
		return Result{}, newtonErrorf(opMinimize, err)
	}

	x := append([]float64(nil), x0...)
	res := Result{Path: [][]float64{append([]float64(nil), x...)}}

	var k int
	var delta []float64
	for k = 0; k < o.Iterations; k++ {
		delta, err = step(f, x, o)
		if errors.Is(err, ErrSingularHessian) {
			log.Debugf("iteration %d: %v; stopping at x=%v", k+1, err, x)
			res.Singular = true
			break
		}
		if err != nil {
			return Result{}, newtonErrorf(opMinimize, fmt.Errorf("iteration %d: %w", k+1, err))
		}
		for i := range x {
			x[i] += delta[i]
		}
		res.Path = append(res.Path, append([]float64(nil), x...))
		res.Iterations++
		log.Debugf("iteration %d: x=%v", k+1, x)
	}
	res.X = x

	return res, nil
}
