package filter

// Histogram counts neighbourhood samples per intensity level and keeps the
// running R, G, B sums of each level.
//
// Only the range of levels touched since the last Reset is cleared and
// scanned, which keeps per-pixel overhead proportional to the brightness
// spread of the neighbourhood instead of the level count.
//
// A Histogram is scratch state for one goroutine; it must not be shared.
type Histogram struct {
	count []int
	sumR  []int
	sumG  []int
	sumB  []int

	// lo and hi bound the touched levels; lo > hi when empty.
	lo, hi int

	samples int
}

// NewHistogram creates an empty histogram with the given number of levels.
// levels must be at least 1.
func NewHistogram(levels int) *Histogram {
	h := &Histogram{
		count: make([]int, levels),
		sumR:  make([]int, levels),
		sumG:  make([]int, levels),
		sumB:  make([]int, levels),
	}
	h.lo, h.hi = levels, -1
	return h
}

// Levels returns the number of buckets.
func (h *Histogram) Levels() int {
	return len(h.count)
}

// Samples returns the number of samples added since the last Reset.
func (h *Histogram) Samples() int {
	return h.samples
}

// Reset zeroes every bucket.
func (h *Histogram) Reset() {
	if h.lo <= h.hi {
		clear(h.count[h.lo : h.hi+1])
		clear(h.sumR[h.lo : h.hi+1])
		clear(h.sumG[h.lo : h.hi+1])
		clear(h.sumB[h.lo : h.hi+1])
	}
	h.lo, h.hi = len(h.count), -1
	h.samples = 0
}

// Add records one sample in bucket. The bucket must already be clamped
// into [0, Levels()).
func (h *Histogram) Add(bucket int, r, g, b uint8) {
	h.count[bucket]++
	h.sumR[bucket] += int(r)
	h.sumG[bucket] += int(g)
	h.sumB[bucket] += int(b)
	h.samples++

	if bucket < h.lo {
		h.lo = bucket
	}
	if bucket > h.hi {
		h.hi = bucket
	}
}

// Count returns the number of samples in bucket.
func (h *Histogram) Count(bucket int) int {
	return h.count[bucket]
}

// Dominant returns the bucket with the strictly greatest count. Ties go to
// the lowest bucket index. An empty histogram returns (-1, 0).
func (h *Histogram) Dominant() (bucket, count int) {
	bucket = -1
	for i := h.lo; i <= h.hi; i++ {
		if h.count[i] > count {
			count = h.count[i]
			bucket = i
		}
	}
	return bucket, count
}

// Mean returns the mean colour of bucket, rounded half up to 8 bits.
// ok is false when the bucket is out of range or holds no samples.
func (h *Histogram) Mean(bucket int) (r, g, b uint8, ok bool) {
	if bucket < 0 || bucket >= len(h.count) {
		return 0, 0, 0, false
	}
	n := h.count[bucket]
	if n == 0 {
		return 0, 0, 0, false
	}
	half := n / 2
	return uint8((h.sumR[bucket] + half) / n),
		uint8((h.sumG[bucket] + half) / n),
		uint8((h.sumB[bucket] + half) / n),
		true
}
