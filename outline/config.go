package outline

import (
	"math"

	"github.com/pkg/errors"
)

// Config holds every tunable of the pipeline
type Config struct {
	// Stride for subsampling boundary points. Default 5
	Step int
	// RDP tolerance in pixels. Default 2.5
	Epsilon float64
	// Binarization threshold on gray value. Default 127
	Threshold uint8
	// Invert gray values before thresholding (dark drawing on light background). Default true
	Invert bool
	// Square kernel size for morphological closing. Default 3
	CloseKernel int
	// Number of dilations (and then erosions) in closing; 0 disables closing. Default 2
	CloseIterations int
}

// DefaultConfig returns default pipeline settings
func DefaultConfig() Config {
	return Config{
		Step:            5,
		Epsilon:         2.5,
		Threshold:       127,
		Invert:          true,
		CloseKernel:     3,
		CloseIterations: 2,
	}
}

// Validate checks that every field is within its domain
func (cfg Config) Validate() error {
	if cfg.Step < 1 {
		return errors.Wrapf(ErrInvalidConfig, "step must be positive, got %d", cfg.Step)
	}
	if math.IsNaN(cfg.Epsilon) || cfg.Epsilon < 0 {
		return errors.Wrapf(ErrInvalidConfig, "epsilon must be non-negative, got %v", cfg.Epsilon)
	}
	if cfg.CloseIterations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "close iterations must be non-negative, got %d", cfg.CloseIterations)
	}
	if cfg.CloseIterations > 0 && cfg.CloseKernel < 1 {
		return errors.Wrapf(ErrInvalidConfig, "close kernel must be positive, got %d", cfg.CloseKernel)
	}
	return nil
}
