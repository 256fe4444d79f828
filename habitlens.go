// Package habitlens surfaces which daily habits are statistically associated
// with improved mood, by regressing journal sentiment scores against habit
// completion history.
//
// The heavy lifting lives in the regression package; this package provides
// convenient top-level wrappers and re-exported types for the common case. For
// fine-grained control over thresholds, use the regression package directly.
//
// # Basic Usage
//
//	import "github.com/quantself/habitlens"
//
//	input := habitlens.Input{
//	    HabitNames:      []string{"Meditation", "Reading"},
//	    HabitEmojis:     []string{"🧘", "📚"},
//	    FeatureMatrix:   features, // column-major, habit 0 first
//	    TargetVector:    sentiments,
//	    CompletionRates: []float64{0.5, 0.33},
//	}
//
//	result, err := habitlens.Analyze(input)
//	if errors.Is(err, habitlens.ErrNoResult) {
//	    // too little signal in this window
//	    return
//	}
//
//	if best, ok := result.ForceMultiplier(); ok {
//	    fmt.Printf("force multiplier: %s %s\n", best.HabitEmoji, best.HabitName)
//	}
package habitlens

import "github.com/quantself/habitlens/regression"

// Re-exported types for the common case.
type (
	// Input is one pre-assembled observation window.
	Input = regression.Input
	// Result is the outcome of a successful analysis.
	Result = regression.Result
	// HabitEffect is the fitted effect of one habit on sentiment.
	HabitEffect = regression.HabitEffect
	// Direction classifies the sign of a habit's effect.
	Direction = regression.Direction
)

// Direction values.
const (
	DirectionNeutral  = regression.DirectionNeutral
	DirectionPositive = regression.DirectionPositive
	DirectionNegative = regression.DirectionNegative
)

// ErrNoResult matches every refusal returned by Analyze.
var ErrNoResult = regression.ErrNoResult

// Analyze fits a multi-habit linear model with default thresholds: a 14-day
// minimum window, at least 2 varying habits, and a 0.01 neutral dead-zone.
//
// It refuses (with an error matching ErrNoResult) whenever the window is too
// sparse or degenerate to support a statistical claim.
func Analyze(input Input) (*Result, error) {
	return regression.Analyze(input)
}
