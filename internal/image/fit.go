package image

import (
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when target bounds are not positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// FitSize returns the size of a w×h image scaled uniformly so that it fits
// in maxW×maxH while touching at least one edge. Scaling goes both up and
// down. Each side is at least 1 pixel for a non-empty input.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return max(int(math.Round(float64(w)*scale)), 1), max(int(math.Round(float64(h)*scale)), 1)
}

// Fit scales img to fit maxW×maxH, preserving aspect ratio, using
// Catmull-Rom resampling. An image that already has the fitted size, or
// has no pixels, is returned as NRGBA without resampling.
func Fit(img image.Image, maxW, maxH int) (*image.NRGBA, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, ErrInvalidDimensions
	}

	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if b.Empty() || (w == b.Dx() && h == b.Dy()) {
		return ToNRGBA(img), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}
