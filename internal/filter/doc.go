// Package filter implements the oil painting filter core.
//
// For every output pixel the filter:
//   - buckets the brightness of each in-bounds neighbour into a level
//   - picks the level with the most samples (lowest level on ties)
//   - writes the mean colour of that level, fully opaque
//
// The package works on raw straight-alpha RGBA8 buffers (Surface) so it has
// no dependency on the public Pixmap type. Scheduling across goroutines is
// the caller's job: PaintRows touches only the rows it is given and reads
// the source and bucket map, both of which are immutable during a run.
//
// Cost is O(w*h*(2r+1)^2) histogram updates. The per-pixel bucket map is
// computed once per run instead of once per neighbour visit.
package filter
