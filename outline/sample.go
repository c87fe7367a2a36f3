package outline

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

const (
	// MinSize is the smallest size hint assigned to a sampled point
	MinSize = 3
	// MaxSize is the largest size hint assigned to a sampled point
	MaxSize = 5
)

// SizeSource is a source of randomness for size hints.
// *rand.Rand from math/rand/v2 satisfies it.
type SizeSource interface {
	// IntN returns a pseudo-random number in [0, n)
	IntN(n int) int
}

type globalSizeSource struct{}

func (globalSizeSource) IntN(n int) int {
	return rand.IntN(n)
}

// GlobalSizeSource returns SizeSource backed by the process-wide generator.
// Sizes drawn from it differ from run to run.
func GlobalSizeSource() SizeSource {
	return globalSizeSource{}
}

// NewSeededSizeSource returns reproducible SizeSource
func NewSeededSizeSource(seed uint64) SizeSource {
	return rand.New(rand.NewPCG(seed, seed))
}

// RandomSize draws size hint in [MinSize, MaxSize]
func RandomSize(src SizeSource) int {
	return MinSize + src.IntN(MaxSize-MinSize+1)
}

// Subsample takes every step-th point starting from the first one and assigns each a fresh random size.
// Output length is ceil(len(points)/step). Non-positive step gives ErrInvalidConfig,
// nil sizes falls back to GlobalSizeSource.
func Subsample(points []Point2D, step int, sizes SizeSource) ([]SizedPoint, error) {
	if step < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "step must be positive, got %d", step)
	}
	if sizes == nil {
		sizes = GlobalSizeSource()
	}
	sampled := make([]SizedPoint, 0, ceilDiv(len(points), step))
	for i := 0; i < len(points); i += step {
		sampled = append(sampled, SizedPoint{
			X:    points[i].X,
			Y:    points[i].Y,
			Size: RandomSize(sizes),
		})
	}
	return sampled, nil
}
