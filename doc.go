// Package oilpaint applies an oil painting effect to bitmaps.
//
// # Overview
//
// For every pixel the filter looks at the square neighbourhood of
// half-width Radius, sorts the neighbours into intensity buckets by
// brightness, picks the bucket holding the most neighbours and paints the
// pixel with that bucket's average colour. Flat regions survive, fine
// detail collapses into blotches, which reads as brush strokes.
//
// # Quick Start
//
//	import "github.com/gogpu/oilpaint"
//
//	src, err := oilpaint.Load("input.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reference parameters: radius 2, 256 levels, intensity 15
//	dst, err := oilpaint.Apply(src, 2, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = dst.Save("output.png")
//
// # Parameters
//
//   - Radius: neighbourhood half-width; cost grows with (2*Radius+1)^2
//   - Levels: number of intensity buckets, at least 1
//   - Intensity: brightness scale; bucket = floor(avg*Intensity/255)
//
// Invalid parameters are rejected with ErrInvalidRadius, ErrInvalidLevels
// or ErrInvalidIntensity before any pixel is touched.
//
// # Edges
//
// Neighbours that fall outside the image are left out rather than
// replaced with the nearest edge pixel, so border pixels vote over fewer
// samples. When two buckets tie, the darker (lower) bucket wins.
//
// # Output
//
// The result always has the source dimensions and alpha 255 everywhere.
// Source alpha is ignored. Results are deterministic and identical for
// every worker count.
//
// # Concurrency
//
// Rows are split into bands that run on a worker pool (see WithWorkers).
// Each band uses its own histogram. Apply checks its context before each
// row, so long runs can be cancelled.
package oilpaint

// Version is the current version of the library.
const Version = "0.1.0"
