package regression

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeInput assembles a synthetic observation window. complete reports the
// completion indicator for a habit on a given day; sentiment produces the
// day's score. Completion rates are derived from the generated matrix.
func makeInput(n int, names, emojis []string, complete func(day, habit int) float64, sentiment func(day int) float64) Input {
	k := len(names)
	features := make([]float64, n*k)
	rates := make([]float64, k)
	for habit := 0; habit < k; habit++ {
		completed := 0.0
		for day := 0; day < n; day++ {
			v := complete(day, habit)
			features[habit*n+day] = v
			completed += v
		}
		rates[habit] = completed / float64(n)
	}

	target := make([]float64, n)
	for day := 0; day < n; day++ {
		target[day] = sentiment(day)
	}

	return Input{
		HabitNames:      names,
		HabitEmojis:     emojis,
		FeatureMatrix:   features,
		TargetVector:    target,
		CompletionRates: rates,
	}
}

// meditationWindow is the canonical strong-signal fixture: Meditation
// completes on even days and lifts sentiment from -0.2 to +0.5, Reading
// completes every third day and carries no signal.
func meditationWindow(n int) Input {
	return makeInput(n,
		[]string{"Meditation", "Reading"},
		[]string{"🧘", "📚"},
		func(day, habit int) float64 {
			if habit == 0 && day%2 == 0 {
				return 1
			}
			if habit == 1 && day%3 == 0 {
				return 1
			}

			return 0
		},
		func(day int) float64 {
			if day%2 == 0 {
				return 0.5
			}

			return -0.2
		})
}

func TestAnalyzeDeterministicSignal(t *testing.T) {
	result, err := Analyze(meditationWindow(30))
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Effects, 2)
	require.Equal(t, "Meditation", result.Effects[0].HabitName)
	require.Equal(t, "Reading", result.Effects[1].HabitName)

	meditation := result.Effects[0]
	require.Greater(t, meditation.Coefficient, 0.3)
	require.Equal(t, DirectionPositive, meditation.Direction)
	require.Equal(t, "🧘", meditation.HabitEmoji)
	require.InDelta(t, 0.5, meditation.CompletionRate, 1e-9)

	require.Greater(t, result.R2, 0.5)
	require.Equal(t, 30, result.Observations)
}

func TestAnalyzeNegativeSignal(t *testing.T) {
	// Alcohol completion co-occurs with a -0.5 sentiment penalty; a second
	// habit varies but carries no signal. Small deterministic noise keeps the
	// residual variance away from zero.
	input := makeInput(20,
		[]string{"Alcohol", "Exercise"},
		[]string{"🍺", "🏃"},
		func(day, habit int) float64 {
			if habit == 0 && day%2 == 1 {
				return 1
			}
			if habit == 1 && day%3 == 0 {
				return 1
			}

			return 0
		},
		func(day int) float64 {
			base := 0.3 + 0.02*math.Sin(float64(day))
			if day%2 == 1 {
				base -= 0.5
			}

			return base
		})

	result, err := Analyze(input)
	require.NoError(t, err)

	alcohol := result.Effects[0]
	require.Equal(t, "Alcohol", alcohol.HabitName)
	require.Less(t, alcohol.Coefficient, -0.1)
	require.Equal(t, DirectionNegative, alcohol.Direction)
}

func TestAnalyzeInsufficientObservations(t *testing.T) {
	for _, n := range []int{1, 5, 10, 13} {
		_, err := Analyze(meditationWindow(n))
		require.ErrorIs(t, err, ErrInsufficientObservations, "n=%d", n)
		require.ErrorIs(t, err, ErrNoResult, "n=%d", n)
	}
}

func TestAnalyzeConstantHabits(t *testing.T) {
	// 20 observations, both habits completed every day: no variance at all.
	input := makeInput(20,
		[]string{"Sleep", "Coffee"},
		[]string{"😴", "☕"},
		func(day, habit int) float64 { return 1 },
		func(day int) float64 { return 0.1 * float64(day%3) })

	_, err := Analyze(input)
	require.ErrorIs(t, err, ErrInsufficientVariance)
	require.ErrorIs(t, err, ErrNoResult)
}

func TestAnalyzeSingleVaryingHabit(t *testing.T) {
	// One habit varies, one never completes: below the two-predictor minimum.
	input := makeInput(21,
		[]string{"Meditation", "Skydiving"},
		[]string{"🧘", "🪂"},
		func(day, habit int) float64 {
			if habit == 0 && day%2 == 0 {
				return 1
			}

			return 0
		},
		func(day int) float64 { return float64(day % 4) })

	_, err := Analyze(input)
	require.ErrorIs(t, err, ErrInsufficientVariance)
}

func TestAnalyzeCollinearHabits(t *testing.T) {
	// Two habits always completed together: identical columns make the
	// normal-equations matrix singular.
	input := makeInput(24,
		[]string{"Gym", "Protein"},
		[]string{"🏋️", "🥩"},
		func(day, habit int) float64 {
			if day%2 == 0 {
				return 1
			}

			return 0
		},
		func(day int) float64 { return 0.1*float64(day%5) - 0.2 })

	_, err := Analyze(input)
	require.ErrorIs(t, err, ErrSingularMatrix)
	require.ErrorIs(t, err, ErrNoResult)
}

func TestAnalyzeDegenerateDegreesOfFreedom(t *testing.T) {
	// Three one-day habits over four days give a full-rank 4x4 design with
	// zero residual degrees of freedom once the window guard is lowered.
	input := makeInput(4,
		[]string{"A", "B", "C"},
		[]string{"a", "b", "c"},
		func(day, habit int) float64 {
			if day == habit {
				return 1
			}

			return 0
		},
		func(day int) float64 { return float64(day) })

	_, err := Analyze(input, WithMinObservations(1))
	require.ErrorIs(t, err, ErrInsufficientObservations)
}

func TestAnalyzeExcludesDegenerateColumns(t *testing.T) {
	// The middle habit is completed every day; it must be excluded while the
	// other two keep their input order.
	input := makeInput(30,
		[]string{"Meditation", "Breathing", "Reading"},
		[]string{"🧘", "🌬️", "📚"},
		func(day, habit int) float64 {
			switch habit {
			case 0:
				if day%2 == 0 {
					return 1
				}
			case 1:
				return 1
			case 2:
				if day%3 == 0 {
					return 1
				}
			}

			return 0
		},
		func(day int) float64 {
			if day%2 == 0 {
				return 0.5
			}

			return -0.2
		})

	result, err := Analyze(input)
	require.NoError(t, err)
	require.Len(t, result.Effects, 2)
	require.Equal(t, "Meditation", result.Effects[0].HabitName)
	require.Equal(t, "Reading", result.Effects[1].HabitName)
}

func TestAnalyzeBounds(t *testing.T) {
	input := makeInput(45,
		[]string{"Walk", "Journal", "Stretch"},
		[]string{"🚶", "📓", "🤸"},
		func(day, habit int) float64 {
			if (day+habit)%(habit+2) == 0 {
				return 1
			}

			return 0
		},
		func(day int) float64 {
			return 0.3*math.Sin(float64(day)) + 0.1*float64(day%2)
		})

	result, err := Analyze(input)
	require.NoError(t, err)

	require.GreaterOrEqual(t, result.R2, 0.0)
	require.LessOrEqual(t, result.R2, 1.0)
	for _, effect := range result.Effects {
		require.NotEmpty(t, effect.HabitName)
		require.NotEmpty(t, effect.HabitEmoji)
		require.GreaterOrEqual(t, effect.PValue, 0.0)
		require.LessOrEqual(t, effect.PValue, 1.0)
		require.GreaterOrEqual(t, effect.CompletionRate, 0.0)
		require.LessOrEqual(t, effect.CompletionRate, 1.0)
		require.False(t, math.IsNaN(effect.Coefficient))
		require.False(t, math.IsInf(effect.Coefficient, 0))
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	first, err := Analyze(meditationWindow(30))
	require.NoError(t, err)

	second, err := Analyze(meditationWindow(30))
	require.NoError(t, err)

	// Fixed operation order makes float results bit-identical, not merely close.
	require.Equal(t, first, second)
}

func TestAnalyzeInvalidInput(t *testing.T) {
	valid := meditationWindow(30)

	tests := []struct {
		name   string
		mutate func(in *Input)
	}{
		{
			name:   "no habits",
			mutate: func(in *Input) { in.HabitNames = nil },
		},
		{
			name:   "emoji count mismatch",
			mutate: func(in *Input) { in.HabitEmojis = in.HabitEmojis[:1] },
		},
		{
			name:   "completion rate count mismatch",
			mutate: func(in *Input) { in.CompletionRates = append(in.CompletionRates, 0.5) },
		},
		{
			name:   "empty target",
			mutate: func(in *Input) { in.TargetVector = nil },
		},
		{
			name:   "feature matrix length mismatch",
			mutate: func(in *Input) { in.FeatureMatrix = in.FeatureMatrix[:10] },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := Analyze(input)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, ErrNoResult)
		})
	}
}

func TestAnalyzeOptionOverrides(t *testing.T) {
	// A 10-day window is refused by default but accepted with a lower floor.
	input := meditationWindow(10)

	_, err := Analyze(input)
	require.ErrorIs(t, err, ErrInsufficientObservations)

	result, err := Analyze(input, WithMinObservations(8))
	require.NoError(t, err)
	require.Equal(t, 10, result.Observations)
}

func TestAnalyzeOptionValidation(t *testing.T) {
	input := meditationWindow(30)

	tests := []struct {
		name string
		opt  Option
	}{
		{"min observations below 1", WithMinObservations(0)},
		{"epsilon at half", WithVarianceEpsilon(0.5)},
		{"negative direction threshold", WithDirectionThreshold(-0.1)},
		{"condition ceiling at 1", WithMaxCondition(1)},
		{"significance level at 1", WithSignificanceLevel(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(input, tt.opt)
			require.Error(t, err)
			// Option errors are caller bugs, not data refusals.
			require.False(t, errors.Is(err, ErrNoResult))
		})
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	input := meditationWindow(30)
	features := append([]float64(nil), input.FeatureMatrix...)
	target := append([]float64(nil), input.TargetVector...)

	_, err := Analyze(input)
	require.NoError(t, err)

	require.Equal(t, features, input.FeatureMatrix)
	require.Equal(t, target, input.TargetVector)
}

func TestForceMultiplierSelection(t *testing.T) {
	// Meditation carries a strong real effect; deterministic low-amplitude
	// noise keeps standard errors positive so significance is meaningful.
	input := makeInput(60,
		[]string{"Meditation", "Reading"},
		[]string{"🧘", "📚"},
		func(day, habit int) float64 {
			if habit == 0 && day%2 == 0 {
				return 1
			}
			if habit == 1 && day%3 == 0 {
				return 1
			}

			return 0
		},
		func(day int) float64 {
			base := -0.2 + 0.05*math.Sin(float64(day))
			if day%2 == 0 {
				base += 0.7
			}

			return base
		})

	result, err := Analyze(input)
	require.NoError(t, err)

	best, ok := result.ForceMultiplier()
	require.True(t, ok)
	require.Equal(t, "Meditation", best.HabitName)
	require.Less(t, best.PValue, 0.05)
}
