package regression

import (
	"fmt"

	"github.com/quantself/habitlens/internal/options"
)

// Config holds the tunable thresholds of the analysis pipeline.
type Config struct {
	// MinObservations is the smallest window (in days) worth analyzing.
	// Below two weeks, day-of-week and short-term noise dominate any signal.
	MinObservations int
	// VarianceEpsilon bounds the open interval (ε, 1−ε) a habit's completion
	// rate must fall in to count as varying.
	VarianceEpsilon float64
	// DirectionThreshold is the dead-zone half-width around zero inside which
	// a coefficient is classified as neutral.
	DirectionThreshold float64
	// MaxCondition is the condition-number ceiling for the normal-equations
	// matrix; factorizations above it are treated as degenerate.
	MaxCondition float64
	// SignificanceLevel is the p-value cutoff used by Result.ForceMultiplier.
	SignificanceLevel float64
}

// defaultConfig returns the default analysis thresholds.
func defaultConfig() Config {
	return Config{
		MinObservations:    14,
		VarianceEpsilon:    1e-6,
		DirectionThreshold: 0.01,
		MaxCondition:       1e12,
		SignificanceLevel:  0.05,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithMinObservations sets the minimum number of observed days.
func WithMinObservations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("regression: minimum observations must be at least 1, got %d", n)
		}
		cfg.MinObservations = n

		return nil
	})
}

// WithVarianceEpsilon sets the completion-rate epsilon for the varying-habit check.
func WithVarianceEpsilon(eps float64) Option {
	return options.New(func(cfg *Config) error {
		if eps <= 0 || eps >= 0.5 {
			return fmt.Errorf("regression: variance epsilon must be in (0, 0.5), got %g", eps)
		}
		cfg.VarianceEpsilon = eps

		return nil
	})
}

// WithDirectionThreshold sets the neutral dead-zone half-width.
func WithDirectionThreshold(threshold float64) Option {
	return options.New(func(cfg *Config) error {
		if threshold < 0 {
			return fmt.Errorf("regression: direction threshold must not be negative, got %g", threshold)
		}
		cfg.DirectionThreshold = threshold

		return nil
	})
}

// WithMaxCondition sets the condition-number ceiling for the solver.
func WithMaxCondition(cond float64) Option {
	return options.New(func(cfg *Config) error {
		if cond <= 1 {
			return fmt.Errorf("regression: condition ceiling must exceed 1, got %g", cond)
		}
		cfg.MaxCondition = cond

		return nil
	})
}

// WithSignificanceLevel sets the p-value cutoff for force-multiplier selection.
func WithSignificanceLevel(alpha float64) Option {
	return options.New(func(cfg *Config) error {
		if alpha <= 0 || alpha >= 1 {
			return fmt.Errorf("regression: significance level must be in (0, 1), got %g", alpha)
		}
		cfg.SignificanceLevel = alpha

		return nil
	})
}
