package filter

import "sync"

// HistogramPool is a thread-safe pool for reusing Histogram instances.
//
// Histograms are grouped by level count, so filters with different
// settings can share one pool. A 256-level histogram holds four 256-entry
// tables; reusing them keeps repeated Apply calls from reallocating per band.
//
// Thread safety: All methods are safe for concurrent use.
type HistogramPool struct {
	mu      sync.Mutex
	buckets map[int][]*Histogram
	maxSize int // max histograms per level count
}

// NewHistogramPool creates a pool retaining at most maxPerBucket histograms
// of each level count. A maxPerBucket of 0 or less means unlimited.
func NewHistogramPool(maxPerBucket int) *HistogramPool {
	return &HistogramPool{
		buckets: make(map[int][]*Histogram),
		maxSize: maxPerBucket,
	}
}

// Get returns an empty histogram with the given number of levels, reusing
// a pooled one when available.
func (p *HistogramPool) Get(levels int) *Histogram {
	p.mu.Lock()
	bucket := p.buckets[levels]
	if n := len(bucket); n > 0 {
		h := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[levels] = bucket[:n-1]
		p.mu.Unlock()
		return h
	}
	p.mu.Unlock()

	return NewHistogram(levels)
}

// Put resets h and returns it to the pool. Nil histograms and histograms
// beyond the bucket limit are dropped.
func (p *HistogramPool) Put(h *Histogram) {
	if h == nil {
		return
	}
	h.Reset()

	levels := h.Levels()

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[levels]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[levels] = append(bucket, h)
}

// Len returns the number of pooled histograms with the given level count.
func (p *HistogramPool) Len(levels int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[levels])
}

// Clear drops every pooled histogram.
func (p *HistogramPool) Clear() {
	p.mu.Lock()
	clear(p.buckets)
	p.mu.Unlock()
}
