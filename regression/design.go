package regression

import "gonum.org/v1/gonum/mat"

// designMatrix bundles the assembled predictor matrix, the target vector, and
// the mapping from matrix columns back to input habit columns.
type designMatrix struct {
	// x is the n × (m+1) design matrix: an all-ones intercept column followed
	// by one column per retained habit, in input order.
	x *mat.Dense
	// y is the n-vector of sentiment scores.
	y *mat.VecDense
	// retained holds the input column index of each habit column in x,
	// offset by one for the intercept.
	retained []int
}

// varyingColumns returns the input indexes of habit columns whose completion
// rate lies strictly inside (eps, 1-eps). A habit completed on every observed
// day, or on none, is perfectly collinear with the intercept and would make
// the normal-equations matrix singular.
func varyingColumns(completionRates []float64, eps float64) []int {
	retained := make([]int, 0, len(completionRates))
	for i, rate := range completionRates {
		if rate > eps && rate < 1-eps {
			retained = append(retained, i)
		}
	}

	return retained
}

// buildDesignMatrix assembles X and y from the column-major feature matrix,
// keeping only the retained habit columns. It copies from the input and never
// mutates it.
func buildDesignMatrix(in Input, retained []int) *designMatrix {
	n := in.Observations()
	cols := len(retained) + 1

	x := mat.NewDense(n, cols, nil)
	for row := 0; row < n; row++ {
		x.Set(row, 0, 1.0)
	}
	for j, habit := range retained {
		col := in.FeatureMatrix[habit*n : (habit+1)*n]
		for row := 0; row < n; row++ {
			x.Set(row, j+1, col[row])
		}
	}

	y := mat.NewVecDense(n, nil)
	for row := 0; row < n; row++ {
		y.SetVec(row, in.TargetVector[row])
	}

	return &designMatrix{x: x, y: y, retained: retained}
}
