package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantself/habitlens/internal/pool"
)

// inference holds the fit diagnostics derived from the solved coefficients.
type inference struct {
	r2      float64
	df      int
	sigma2  float64
	stdErrs []float64
	tStats  []float64
	pValues []float64
}

// computeInference derives residual statistics and per-coefficient
// significance from the solved system.
//
// Each guard against division by zero is deliberate:
//   - df <= 0 is refused rather than producing an undefined variance
//   - SS_tot == 0 (a constant target) defines R² as 0
//   - a zero standard error yields t = 0 and p = 1, i.e. no evidence
func computeInference(x *mat.Dense, y *mat.VecDense, sol *solution) (*inference, error) {
	n, cols := x.Dims()

	df := n - cols
	if df <= 0 {
		return nil, fmt.Errorf("%w: %d observations cannot support %d parameters",
			ErrInsufficientObservations, n, cols)
	}

	fitted, release := pool.GetFloat64Slice(n)
	defer release()

	fittedVec := mat.NewVecDense(n, fitted)
	fittedVec.MulVec(x, sol.beta)

	// Single pass over residuals and target deviations.
	mean := 0.0
	for i := 0; i < n; i++ {
		mean += y.AtVec(i)
	}
	mean /= float64(n)

	ssRes := 0.0
	ssTot := 0.0
	for i := 0; i < n; i++ {
		residual := y.AtVec(i) - fittedVec.AtVec(i)
		ssRes += residual * residual
		deviation := y.AtVec(i) - mean
		ssTot += deviation * deviation
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = clamp(1.0-ssRes/ssTot, 0, 1)
	}

	sigma2 := ssRes / float64(df)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	stdErrs := make([]float64, cols)
	tStats := make([]float64, cols)
	pValues := make([]float64, cols)
	for i := 0; i < cols; i++ {
		variance := sigma2 * sol.invDiag[i]
		if variance > 0 {
			stdErrs[i] = math.Sqrt(variance)
		}

		if stdErrs[i] == 0 {
			tStats[i] = 0
			pValues[i] = 1.0

			continue
		}

		tStats[i] = sol.beta.AtVec(i) / stdErrs[i]
		pValues[i] = clamp(2.0*tDist.Survival(math.Abs(tStats[i])), 0, 1)
	}

	return &inference{
		r2:      r2,
		df:      df,
		sigma2:  sigma2,
		stdErrs: stdErrs,
		tStats:  tStats,
		pValues: pValues,
	}, nil
}

// clamp bounds v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
