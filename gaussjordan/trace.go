package gaussjordan

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// Trace message layouts. Row and column numbers in messages are 1-based.
const (
	msgStart        = "Starting Gauss-Jordan elimination:"
	msgSystemSize   = "System has %d equations and %d variables"
	msgInitial      = "Initial augmented matrix:"
	msgSwap         = "Swapped row %d with row %d"
	msgSmallPivot   = "Warning: Pivot at position (%d,%d) is very small or zero"
	msgDivide       = "Row %d divided by %.3f to make pivot = 1"
	msgEliminate    = "Row %d = Row %d - (%.3f) * Row %d"
	msgAfterColumn  = "After eliminating variable x%d:"
	msgInconsistent = "System is inconsistent - no solution exists"
	msgInfinite     = "System has infinite solutions (rank = %d < %d)"
	msgSolution     = "Solution found: [%s]"
)

// recorder appends trace entries for a single run. It is never shared.
type recorder struct {
	steps     Trace
	snapshots bool
	header    bool
}

func newRecorder(o options) *recorder {
	return &recorder{snapshots: o.snapshots, header: o.header}
}

func (r *recorder) addf(format string, args ...any) {
	r.steps = append(r.steps, fmt.Sprintf(format, args...))
}

func (r *recorder) start(m *matrix.Dense) {
	if !r.header {
		return
	}
	rows, cols := m.Shape()
	r.steps = append(r.steps, msgStart)
	r.addf(msgSystemSize, rows, cols-1)
	r.steps = append(r.steps, msgInitial, formatMatrix(m))
}

func (r *recorder) swap(i, k int) { r.addf(msgSwap, i+1, k+1) }

func (r *recorder) smallPivot(i int) { r.addf(msgSmallPivot, i+1, i+1) }

func (r *recorder) divide(i int, pivot float64) { r.addf(msgDivide, i+1, pivot) }

func (r *recorder) eliminate(j, i int, factor float64) { r.addf(msgEliminate, j+1, j+1, factor, i+1) }

func (r *recorder) column(i int, m *matrix.Dense) {
	if !r.snapshots {
		return
	}
	r.addf(msgAfterColumn, i+1)
	r.steps = append(r.steps, formatMatrix(m))
}

// outcome appends the closing line describing out.
func (r *recorder) outcome(out Outcome, n int) {
	switch out.Kind {
	case Inconsistent:
		r.steps = append(r.steps, msgInconsistent)
	case Underdetermined:
		r.addf(msgInfinite, out.Rank, n)
	case Unique:
		parts := make([]string, len(out.Solution))
		for k, v := range out.Solution {
			parts[k] = fmt.Sprintf("%.6f", v)
		}
		r.addf(msgSolution, strings.Join(parts, " "))
	}
}

// formatMatrix renders m one row per line as "[" + "%8.3f" cells joined by a
// space + "]". The layout is stable so traces stay comparable across runs.
func formatMatrix(m *matrix.Dense) string {
	var b strings.Builder
	rows, cols := m.Shape()
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			v, _ = m.At(i, j) // indices are in range by construction
			fmt.Fprintf(&b, "%8.3f", v)
		}
		b.WriteByte(']')
	}

	return b.String()
}
