package regression

import (
	"fmt"
	"strings"
)

// Direction classifies the sign of a habit's estimated effect on sentiment.
type Direction int

const (
	// DirectionNeutral marks a coefficient inside the dead-zone around zero.
	DirectionNeutral Direction = iota
	// DirectionPositive marks a coefficient above the dead-zone threshold.
	DirectionPositive
	// DirectionNegative marks a coefficient below the negated threshold.
	DirectionNegative
)

// directionNames maps Direction to their string representations.
var directionNames = map[Direction]string{
	DirectionNeutral:  "neutral",
	DirectionPositive: "positive",
	DirectionNegative: "negative",
}

// String returns the string representation of the direction.
func (d Direction) String() string {
	if name, exists := directionNames[d]; exists {
		return name
	}

	return "unknown"
}

// directionFromString maps string names to Direction.
var directionFromString = map[string]Direction{
	"neutral":  DirectionNeutral,
	"positive": DirectionPositive,
	"negative": DirectionNegative,
}

// DirectionFromString returns the Direction for a given string name.
// Returns Direction(-1) for unknown names.
func DirectionFromString(name string) Direction {
	if direction, exists := directionFromString[strings.ToLower(name)]; exists {
		return direction
	}

	return Direction(-1)
}

// classifyDirection labels a coefficient against the dead-zone threshold.
// Coefficients with |value| <= threshold are neutral.
func classifyDirection(coefficient, threshold float64) Direction {
	switch {
	case coefficient > threshold:
		return DirectionPositive
	case coefficient < -threshold:
		return DirectionNegative
	default:
		return DirectionNeutral
	}
}

// Input is one observation window ready for analysis.
//
// The caller assembles it from persisted daily records: habit completion
// history aligned by calendar day with journal sentiment scores. The package
// never mutates it.
//
// Fields:
//   - HabitNames: one name per tracked habit column; column order follows
//     slice order, and the name is the habit's identity key
//   - HabitEmojis: display metadata parallel to HabitNames, opaque to the math
//   - FeatureMatrix: flat column-major observations × habits matrix; the value
//     for habit j on day i lives at index j*n + i
//   - TargetVector: one sentiment score per observed day
//   - CompletionRates: fraction of observed days each habit was completed,
//     in [0, 1], parallel to HabitNames
type Input struct {
	HabitNames      []string
	HabitEmojis     []string
	FeatureMatrix   []float64
	TargetVector    []float64
	CompletionRates []float64
}

// Observations returns the number of observed days in the window.
func (in Input) Observations() int {
	return len(in.TargetVector)
}

// Habits returns the number of tracked habit columns.
func (in Input) Habits() int {
	return len(in.HabitNames)
}

// HabitEffect is the fitted effect of one habit on daily sentiment.
//
// Fields:
//   - HabitName, HabitEmoji: identity passed through from the input column
//   - Coefficient: estimated change in sentiment on days the habit completes
//   - StdErr: standard error of the coefficient
//   - TStat: t-statistic of the coefficient (0 when StdErr is 0)
//   - PValue: two-tailed significance in [0, 1]; 1 means no evidence
//   - CompletionRate: pass-through from the input
//   - Direction: sign classification of the coefficient
type HabitEffect struct {
	HabitName      string
	HabitEmoji     string
	Coefficient    float64
	StdErr         float64
	TStat          float64
	PValue         float64
	CompletionRate float64
	Direction      Direction
}

// String returns a string representation of the effect.
func (e HabitEffect) String() string {
	return fmt.Sprintf("HabitEffect{Habit: %s, Coefficient: %+.4f, PValue: %.4f, Direction: %s}",
		e.HabitName, e.Coefficient, e.PValue, e.Direction)
}

// Result is the outcome of a successful regression run.
//
// Effects holds one entry per retained habit, in input order. Habits whose
// completion rate never varied across the window are excluded from the fit
// and carry no entry.
//
// Fields:
//   - R2: coefficient of determination, clamped to [0, 1]
//   - Intercept: baseline sentiment on a day with no retained habit completed
//   - Effects: per-habit effect estimates in input order
//   - Observations: number of days used in the fit
//   - DegreesOfFreedom: observations minus fitted parameters
//   - ResidualVariance: residual sum of squares divided by DegreesOfFreedom
type Result struct {
	R2               float64
	Intercept        float64
	Effects          []HabitEffect
	Observations     int
	DegreesOfFreedom int
	ResidualVariance float64

	significanceLevel float64
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{R2: %.4f, Habits: %d, Observations: %d}",
		r.R2, len(r.Effects), r.Observations)
}

// FormulaString renders the fitted model as a human-readable equation, e.g.
//
//	sentiment = -0.2000 + 0.7000*Meditation - 0.1500*Alcohol
func (r *Result) FormulaString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sentiment = %.4f", r.Intercept)
	for _, effect := range r.Effects {
		if effect.Coefficient < 0 {
			fmt.Fprintf(&sb, " - %.4f*%s", -effect.Coefficient, effect.HabitName)
		} else {
			fmt.Fprintf(&sb, " + %.4f*%s", effect.Coefficient, effect.HabitName)
		}
	}

	return sb.String()
}

// Predict returns the model's predicted sentiment for a hypothetical day.
//
// completions holds one completion indicator (typically 0 or 1) per retained
// habit, in the same order as Effects.
func (r *Result) Predict(completions []float64) (float64, error) {
	if len(completions) != len(r.Effects) {
		return 0, fmt.Errorf("regression: predict expects %d completion values, got %d",
			len(r.Effects), len(completions))
	}

	predicted := r.Intercept
	for i, effect := range r.Effects {
		predicted += effect.Coefficient * completions[i]
	}

	return predicted, nil
}

// ForceMultiplier returns the habit with the strongest positive effect among
// the statistically significant ones — the system's headline output.
//
// A habit qualifies when its direction is positive and its p-value is below
// the configured significance level (see WithSignificanceLevel). The second
// return value is false when no habit qualifies.
func (r *Result) ForceMultiplier() (HabitEffect, bool) {
	var best HabitEffect
	found := false
	for _, effect := range r.Effects {
		if effect.Direction != DirectionPositive || effect.PValue >= r.significanceLevel {
			continue
		}
		if !found || effect.Coefficient > best.Coefficient {
			best = effect
			found = true
		}
	}

	return best, found
}
