package newton

import "math"

// stepOr returns h when it is a usable difference step, def otherwise.
func stepOr(h, def float64) float64 {
	if h > 0 && !math.IsInf(h, 0) {
		return h
	}

	return def
}

// Gradient estimates ∇f(x) with central differences:
//
//	∂f/∂xᵢ ≈ (f(x + h·eᵢ) − f(x − h·eᵢ)) / 2h
//
// A non-positive, NaN or infinite h selects DefaultGradStep.
// x is not modified. Cost: 2n evaluations of f.
func Gradient(f Func, x []float64, h float64) []float64 {
	h = stepOr(h, DefaultGradStep)
	xp := append([]float64(nil), x...)
	g := make([]float64, len(x))

	var fp, fm, orig float64
	for i := range xp {
		orig = xp[i]
		xp[i] = orig + h
		fp = f(xp)
		xp[i] = orig - h
		fm = f(xp)
		xp[i] = orig
		g[i] = (fp - fm) / (2 * h)
	}

	return g
}

// Hessian estimates the matrix of second partial derivatives of f at x.
//
// Implementation:
//   - Diagonal: (f(x + h·eᵢ) − 2f(x) + f(x − h·eᵢ)) / h².
//   - Mixed:    (f(++) − f(+−) − f(−+) + f(−−)) / 4h², where the signs
//     select ±h along eᵢ and eⱼ. The result is symmetric by construction.
//
// A non-positive, NaN or infinite h selects DefaultHessStep.
// x is not modified. Cost: 1 + 2n + 2n(n−1) evaluations of f.
func Hessian(f Func, x []float64, h float64) [][]float64 {
	h = stepOr(h, DefaultHessStep)
	n := len(x)
	xp := append([]float64(nil), x...)
	hess := make([][]float64, n)
	for i := range hess {
		hess[i] = make([]float64, n)
	}
	if n == 0 {
		return hess
	}

	f0 := f(xp)
	h2 := h * h

	var i, j int
	var fp, fm, oi, oj float64
	for i = 0; i < n; i++ {
		oi = xp[i]
		xp[i] = oi + h
		fp = f(xp)
		xp[i] = oi - h
		fm = f(xp)
		xp[i] = oi
		hess[i][i] = (fp - 2*f0 + fm) / h2
	}

	var fpp, fpm, fmp, fmm float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			oi, oj = xp[i], xp[j]

			xp[i], xp[j] = oi+h, oj+h
			fpp = f(xp)
			xp[i], xp[j] = oi+h, oj-h
			fpm = f(xp)
			xp[i], xp[j] = oi-h, oj+h
			fmp = f(xp)
			xp[i], xp[j] = oi-h, oj-h
			fmm = f(xp)

			xp[i], xp[j] = oi, oj
			hess[i][j] = (fpp - fpm - fmp + fmm) / (4 * h2)
			hess[j][i] = hess[i][j]
		}
	}

	return hess
}
