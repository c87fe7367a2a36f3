package outline

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoBoundaryFound is returned when the mask contains no separable foreground region
	ErrNoBoundaryFound = errors.New("no boundary found")
	// ErrMalformedBoundary is returned when selected boundary has no usable coordinate
	ErrMalformedBoundary = errors.New("malformed boundary")
	// ErrEmptyReferenceSet signals that size lookup was called without reference points.
	// Pipeline never produces an empty sampled sequence, so seeing it means a broken caller.
	ErrEmptyReferenceSet = errors.New("empty reference set")
	// ErrInvalidConfig is returned for configuration values out of their domain
	ErrInvalidConfig = errors.New("invalid config")
)

// ImageLoadError is returned when source image can't be opened or decoded
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("can't load image %q: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}
