package newton

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPoint indicates a zero-length starting point.
	ErrEmptyPoint = errors.New("newton: point must be non-empty")

	// ErrNilFunc indicates a nil objective.
	ErrNilFunc = errors.New("newton: objective must be non-nil")

	// ErrBadOptions indicates a negative, NaN or infinite option value.
	ErrBadOptions = errors.New("newton: invalid options")

	// ErrSingularHessian indicates H·δ = −∇f has no unique solution.
	ErrSingularHessian = errors.New("newton: singular Hessian")
)

const (
	opStep     = "Step"
	opMinimize = "Minimize"
)

// newtonErrorf tags err with the operation name, preserving it via %w.
func newtonErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
