package newton

import "github.com/katalvlaran/lvlsolve/gaussjordan"

// Func is a scalar objective over an n-dimensional point.
// It must not retain or modify x.
type Func func(x []float64) float64

const (
	// DefaultGradStep is the central-difference step for the gradient.
	DefaultGradStep = 1e-5

	// DefaultHessStep is the central-difference step for the Hessian.
	DefaultHessStep = 1e-4

	// DefaultIterations is the number of Newton steps Minimize takes.
	DefaultIterations = 5
)

// Options configures Step and Minimize.
//
// Fields:
//   - GradStep   : gradient difference step h (>0). Zero selects DefaultGradStep.
//   - HessStep   : Hessian difference step h (>0). Zero selects DefaultHessStep.
//   - Iterations : Newton steps for Minimize (>=0). Zero selects DefaultIterations.
//   - Epsilon    : pivot tolerance handed to the elimination (>=0).
//     Zero selects gaussjordan.DefaultEpsilon.
//
// A nil *Options is equivalent to DefaultOptions().
type Options struct {
	GradStep   float64
	HessStep   float64
	Iterations int
	Epsilon    float64
}

// DefaultOptions returns the defaults used when opts is nil.
func DefaultOptions() Options {
	return Options{
		GradStep:   DefaultGradStep,
		HessStep:   DefaultHessStep,
		Iterations: DefaultIterations,
		Epsilon:    gaussjordan.DefaultEpsilon,
	}
}

// Result is the outcome of Minimize.
//
//   - X          : final iterate.
//   - Path       : every iterate, starting with a copy of x0.
//   - Iterations : steps actually applied.
//   - Singular   : true when Minimize stopped on a singular Hessian.
type Result struct {
	X          []float64
	Path       [][]float64
	Iterations int
	Singular   bool
}
