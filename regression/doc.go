// Package regression correlates daily habit completion with daily sentiment
// through ordinary least squares and reports which habits carry a statistically
// supported effect on mood.
//
// The package consumes a pre-assembled observation window — one sentiment score
// per day plus a column-major matrix of habit-completion indicators — and
// produces per-habit effect estimates with two-tailed significance, or refuses
// when the window cannot support a claim.
//
// # Key Features
//
//   - **Multi-habit OLS fit**: intercept plus one coefficient per varying habit
//   - **Per-coefficient inference**: standard errors, t-statistics, and p-values
//     from the Student's t distribution
//   - **Degeneracy guards**: short windows, constant habits, and singular or
//     ill-conditioned designs are refused instead of producing garbage
//   - **Directional classification**: each effect is labeled positive, negative,
//     or neutral against a configurable dead-zone threshold
//   - **Deterministic**: identical inputs always produce identical outputs
//
// # Usage
//
// Assemble an Input for a chosen date window and analyze it:
//
//	input := regression.Input{
//	    HabitNames:      []string{"Meditation", "Reading"},
//	    HabitEmojis:     []string{"🧘", "📚"},
//	    FeatureMatrix:   features, // column-major, habit 0 first
//	    TargetVector:    sentiments,
//	    CompletionRates: []float64{0.5, 0.33},
//	}
//
//	result, err := regression.Analyze(input)
//	if errors.Is(err, regression.ErrNoResult) {
//	    // window too sparse or degenerate; fall back to a non-statistical report
//	    return
//	}
//
//	for _, effect := range result.Effects {
//	    fmt.Printf("%s %s: %+.3f (p=%.3f, %s)\n",
//	        effect.HabitEmoji, effect.HabitName,
//	        effect.Coefficient, effect.PValue, effect.Direction)
//	}
//
// # Refusal Semantics
//
// Every failure mode is an expected, recoverable condition, never a panic. All
// refusal errors match ErrNoResult under errors.Is; callers that want the cause
// can additionally match ErrInsufficientObservations, ErrInsufficientVariance,
// ErrSingularMatrix, or ErrInvalidInput.
//
// Habit columns that never vary across the window (completion rate at 0 or 1)
// are excluded from the fit rather than refused outright; the run is refused
// only when fewer than two varying habits remain.
//
// # Data Layout
//
// FeatureMatrix is a flat column-major slice: all observations for habit 0,
// then all observations for habit 1, and so on. The value for habit j on day i
// lives at index j*n + i, where n is the observation count. This matches how
// the matrix is consumed, column by column during construction.
//
// # Concurrency
//
// Analyze is a pure function over its input. It holds no shared state and is
// safe to call concurrently with distinct inputs.
package regression
