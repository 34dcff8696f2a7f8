package oilpaint

import (
	"errors"
	"fmt"

	"github.com/gogpu/oilpaint/internal/filter"
)

// Reference parameter values.
const (
	// DefaultRadius is the neighbourhood half-width.
	DefaultRadius = 2

	// DefaultLevels is the number of intensity buckets.
	DefaultLevels = 256

	// DefaultIntensity is the brightness quantization factor.
	DefaultIntensity = 15

	// MaxLevels bounds the histogram size of one run. A run uses Levels
	// buckets, or Intensity+1 when that is smaller, since no pixel maps
	// past Intensity.
	MaxLevels = 1 << 16
)

// Parameter errors. These are contract violations: callers should check
// their inputs rather than retry.
var (
	// ErrInvalidRadius is returned for a negative radius.
	ErrInvalidRadius = errors.New("oilpaint: radius must be >= 0")

	// ErrInvalidLevels is returned for fewer than one intensity level, or
	// when Levels and Intensity together need more than MaxLevels.
	ErrInvalidLevels = errors.New("oilpaint: invalid levels")

	// ErrInvalidIntensity is returned for a negative intensity factor.
	ErrInvalidIntensity = errors.New("oilpaint: intensity must be >= 0")

	// ErrNilPixmap is returned when the source pixmap is nil.
	ErrNilPixmap = errors.New("oilpaint: nil pixmap")
)

// Params configures the oil painting filter.
type Params struct {
	// Radius is the neighbourhood half-width in pixels. The window is
	// (2*Radius+1) pixels square; a radius past the image size covers the
	// whole image.
	Radius int

	// Levels is the number of intensity buckets. Bucket indices past
	// Levels-1 are clamped.
	Levels int

	// Intensity controls how coarsely brightness is quantized: a pixel of
	// average brightness v falls in bucket floor(v*Intensity/255). With the
	// reference value 15 only 16 buckets are ever used. Any non-negative
	// value is valid; very large values put every non-black pixel in the
	// top bucket.
	Intensity int
}

// DefaultParams returns the reference parameters {2, 256, 15}.
func DefaultParams() Params {
	return Params{
		Radius:    DefaultRadius,
		Levels:    DefaultLevels,
		Intensity: DefaultIntensity,
	}
}

// Validate checks p and returns the first violated constraint.
func (p Params) Validate() error {
	switch {
	case p.Radius < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, p.Radius)
	case p.Levels < 1:
		return fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidLevels, p.Levels)
	case p.Intensity < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidIntensity, p.Intensity)
	case filter.UsedLevels(p.Intensity, p.Levels) > MaxLevels:
		return fmt.Errorf("%w: %d levels at intensity %d exceed %d",
			ErrInvalidLevels, p.Levels, p.Intensity, MaxLevels)
	}
	return nil
}
