package regression

import (
	"errors"
	"fmt"
)

// ErrNoResult is the umbrella refusal signal. Every condition that prevents a
// fit from being produced wraps this error, so callers that do not care about
// the cause can test a single sentinel:
//
//	result, err := regression.Analyze(input)
//	if errors.Is(err, regression.ErrNoResult) {
//	    // not enough signal in this window; skip the statistical section
//	}
var ErrNoResult = errors.New("regression: no result")

// Tagged refusal causes. All of them match ErrNoResult under errors.Is.
var (
	// ErrInvalidInput indicates structurally inconsistent input: mismatched
	// parallel slices, a feature matrix whose length is not observations ×
	// habits, or an empty window.
	ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrNoResult)

	// ErrInsufficientObservations indicates the window holds fewer days than
	// the configured minimum, or too few observations for the number of
	// fitted parameters.
	ErrInsufficientObservations = fmt.Errorf("%w: insufficient observations", ErrNoResult)

	// ErrInsufficientVariance indicates fewer than two habit columns vary
	// across the window. A habit completed every day (or never) is perfectly
	// collinear with the intercept and contributes no independent signal.
	ErrInsufficientVariance = fmt.Errorf("%w: insufficient varying habits", ErrNoResult)

	// ErrSingularMatrix indicates the normal-equations matrix is singular or
	// numerically ill-conditioned, typically caused by collinear habits.
	ErrSingularMatrix = fmt.Errorf("%w: singular or ill-conditioned design matrix", ErrNoResult)
)
