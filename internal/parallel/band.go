// Package parallel provides row-band scheduling for per-pixel image filters.
//
// An image is cut into horizontal bands of whole rows. Every band is an
// independent task: it reads shared immutable inputs and writes only its own
// rows of the output, so bands can run on any worker in any order and the
// result does not depend on the schedule.
//
// Thread safety: Band values are plain data. WorkerPool is safe for
// concurrent use.
package parallel

// DefaultBandHeight is the number of rows per band when none is given.
// 32 rows keep a 1080p band near 250KB of output, enough work to hide
// scheduling overhead while still balancing across cores.
const DefaultBandHeight = 32

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	// Index is the band's position from the top (0-based).
	Index int

	// Y0 is the first row.
	Y0 int

	// Y1 is one past the last row.
	Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Contains reports whether row y belongs to the band.
func (b Band) Contains(y int) bool {
	return y >= b.Y0 && y < b.Y1
}

// SplitRows cuts height rows into bands of at most bandHeight rows.
// The last band may be shorter. A bandHeight larger than height yields a
// single band. A bandHeight of 0 or less uses
// DefaultBandHeight. A height of 0 or less yields no bands.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}
	bandHeight = min(bandHeight, height)

	n := (height + bandHeight - 1) / bandHeight
	bands := make([]Band, n)
	for i := range bands {
		y0 := i * bandHeight
		bands[i] = Band{
			Index: i,
			Y0:    y0,
			Y1:    min(y0+bandHeight, height),
		}
	}
	return bands
}
