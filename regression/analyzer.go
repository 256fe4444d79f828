package regression

import (
	"fmt"

	"github.com/quantself/habitlens/internal/options"
)

// Analyze fits a multi-habit linear model to one observation window and
// returns per-habit effect estimates with statistical confidence.
//
// The pipeline runs guard checks, assembles the design matrix, solves the
// normal equations, derives inference statistics, and classifies each
// coefficient. Habit columns that never vary across the window are excluded;
// the remaining habits keep their input order in Result.Effects.
//
// Parameters:
//   - input: the pre-assembled observation window (never mutated)
//   - opts: optional threshold overrides, see the With* options
//
// Returns:
//   - *Result: the fitted model when the window supports one
//   - error: a refusal matching ErrNoResult when the window is too sparse or
//     degenerate, or an option error when an override is out of range
//
// Example:
//
//	result, err := regression.Analyze(input)
//	if errors.Is(err, regression.ErrNoResult) {
//	    return narrativeOnlyReport()
//	}
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.FormulaString())
func Analyze(input Input, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	n := input.Observations()
	if n < cfg.MinObservations {
		return nil, fmt.Errorf("%w: have %d days, need %d",
			ErrInsufficientObservations, n, cfg.MinObservations)
	}

	retained := varyingColumns(input.CompletionRates, cfg.VarianceEpsilon)
	if len(retained) < 2 {
		return nil, fmt.Errorf("%w: %d of %d habits vary, need 2",
			ErrInsufficientVariance, len(retained), input.Habits())
	}

	dm := buildDesignMatrix(input, retained)

	sol, err := solveNormalEquations(dm.x, dm.y, cfg.MaxCondition)
	if err != nil {
		return nil, err
	}

	inf, err := computeInference(dm.x, dm.y, sol)
	if err != nil {
		return nil, err
	}

	return packageResult(input, dm, sol, inf, cfg), nil
}

// validateInput rejects structurally inconsistent input without panicking.
func validateInput(input Input) error {
	k := input.Habits()
	if k == 0 {
		return fmt.Errorf("%w: no habit columns", ErrInvalidInput)
	}
	if len(input.HabitEmojis) != k {
		return fmt.Errorf("%w: %d habit names but %d emojis",
			ErrInvalidInput, k, len(input.HabitEmojis))
	}
	if len(input.CompletionRates) != k {
		return fmt.Errorf("%w: %d habit names but %d completion rates",
			ErrInvalidInput, k, len(input.CompletionRates))
	}

	n := input.Observations()
	if n == 0 {
		return fmt.Errorf("%w: empty target vector", ErrInvalidInput)
	}
	if len(input.FeatureMatrix) != n*k {
		return fmt.Errorf("%w: feature matrix holds %d values, want %d (%d days × %d habits)",
			ErrInvalidInput, len(input.FeatureMatrix), n*k, n, k)
	}

	return nil
}

// packageResult maps the solved coefficients back onto the input habit
// columns. Index 0 of the coefficient vector is the intercept; habit i of the
// retained set lives at index i+1.
func packageResult(input Input, dm *designMatrix, sol *solution, inf *inference, cfg Config) *Result {
	effects := make([]HabitEffect, len(dm.retained))
	for i, habit := range dm.retained {
		coefficient := sol.beta.AtVec(i + 1)
		effects[i] = HabitEffect{
			HabitName:      input.HabitNames[habit],
			HabitEmoji:     input.HabitEmojis[habit],
			Coefficient:    coefficient,
			StdErr:         inf.stdErrs[i+1],
			TStat:          inf.tStats[i+1],
			PValue:         inf.pValues[i+1],
			CompletionRate: input.CompletionRates[habit],
			Direction:      classifyDirection(coefficient, cfg.DirectionThreshold),
		}
	}

	return &Result{
		R2:                inf.r2,
		Intercept:         sol.beta.AtVec(0),
		Effects:           effects,
		Observations:      input.Observations(),
		DegreesOfFreedom:  inf.df,
		ResidualVariance:  inf.sigma2,
		significanceLevel: cfg.SignificanceLevel,
	}
}
