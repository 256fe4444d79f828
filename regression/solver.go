package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// solution holds the least-squares coefficient vector and the diagonal of the
// inverted Gram matrix, which the inference stage needs for coefficient
// variances.
type solution struct {
	// beta is the (m+1)-vector of fitted coefficients, intercept first.
	beta *mat.VecDense
	// invDiag is the diagonal of (XᵗX)⁻¹.
	invDiag []float64
}

// solveNormalEquations computes β = (XᵗX)⁻¹Xᵗy through a Cholesky
// factorization of the Gram matrix.
//
// XᵗX is symmetric positive definite whenever the design columns are linearly
// independent, so a failed factorization is the degeneracy signal: some habit
// column is (near-)collinear with another or with the intercept. A
// factorization that succeeds with a condition number above maxCond is treated
// the same way, since its solution would amplify input noise beyond use.
//
// Returns ErrSingularMatrix for either form of degeneracy; no NaN or Inf ever
// escapes this function.
func solveNormalEquations(x *mat.Dense, y *mat.VecDense, maxCond float64) (*solution, error) {
	_, cols := x.Dims()

	var gram mat.Dense
	gram.Mul(x.T(), x)

	// mat.Cholesky wants the Symmetric interface; mirror the computed Gram
	// matrix into a SymDense.
	sym := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			sym.SetSym(i, j, gram.At(i, j))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("%w: Cholesky factorization failed", ErrSingularMatrix)
	}
	if cond := chol.Cond(); cond > maxCond {
		return nil, fmt.Errorf("%w: condition number %.3g exceeds %.3g", ErrSingularMatrix, cond, maxCond)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	beta := mat.NewVecDense(cols, nil)
	if err := chol.SolveVecTo(beta, &xty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	invDiag := make([]float64, cols)
	for i := range invDiag {
		invDiag[i] = inv.At(i, i)
	}

	return &solution{beta: beta, invDiag: invDiag}, nil
}
