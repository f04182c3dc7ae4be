package gaussjordan

import (
	"math"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// classify inspects a reduced n×(n+1) matrix.
//
// A row is "all zero" when every coefficient satisfies |a[r][c]| ≤ eps.
// An all-zero row with |a[r][n]| > eps makes the system inconsistent, and
// that verdict wins over rank counting. Otherwise rank is the number of rows
// that are not all zero; rank < n is underdetermined, rank == n unique.
func classify(m *matrix.Dense, eps float64) Outcome {
	n := m.Rows()
	rank := 0
	inconsistent := false

	var r, c int
	var allZero bool
	for r = 0; r < n; r++ {
		allZero = true
		for c = 0; c < n; c++ {
			if math.Abs(at(m, r, c)) > eps {
				allZero = false
				break
			}
		}
		if !allZero {
			rank++
			continue
		}
		if math.Abs(at(m, r, n)) > eps {
			inconsistent = true
		}
	}

	switch {
	case inconsistent:
		return Outcome{Kind: Inconsistent, Rank: rank}
	case rank < n:
		return Outcome{Kind: Underdetermined, Rank: rank}
	}

	solution := make([]float64, n)
	for r = 0; r < n; r++ {
		solution[r] = at(m, r, n)
	}

	return Outcome{Kind: Unique, Solution: solution, Rank: n}
}
