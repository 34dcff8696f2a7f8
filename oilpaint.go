package oilpaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/oilpaint/internal/filter"
	"github.com/gogpu/oilpaint/internal/parallel"
)

// ErrFilterClosed is returned by Apply after Close.
var ErrFilterClosed = errors.New("oilpaint: filter closed")

// Filter applies the oil painting effect with fixed parameters.
//
// A Filter owns a worker pool when it runs with more than one worker;
// call Close to release it. Apply is safe for concurrent use.
type Filter struct {
	params  Params
	opts    options
	workers int
	core    filter.OilPaint
	pool    *parallel.WorkerPool
	hists   *filter.HistogramPool
	closed  atomic.Bool
}

// NewFilter validates p and creates a filter.
func NewFilter(p Params, opts ...Option) (*Filter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	f := &Filter{
		params:  p,
		opts:    o,
		workers: workers,
		// Levels past intensity+1 are never reached, so histograms are
		// sized to what the quantizer can produce.
		core: filter.OilPaint{
			Radius:    p.Radius,
			Levels:    filter.UsedLevels(p.Intensity, p.Levels),
			Intensity: p.Intensity,
		},
		hists: filter.NewHistogramPool(workers),
	}
	if workers > 1 {
		f.pool = parallel.NewWorkerPool(workers)
	}
	return f, nil
}

// Params returns the filter parameters.
func (f *Filter) Params() Params {
	return f.params
}

// Workers returns the number of goroutines used per Apply.
func (f *Filter) Workers() int {
	return f.workers
}

// Close releases the worker pool. Close is safe to call multiple times.
func (f *Filter) Close() {
	if !f.closed.CompareAndSwap(false, true) {
		return
	}
	if f.pool != nil {
		f.pool.Close()
	}
	f.hists.Clear()
}

func (f *Filter) logger() *slog.Logger {
	if f.opts.logger != nil {
		return f.opts.logger
	}
	return Logger()
}

// Apply paints src and returns a new, fully opaque pixmap of the same size.
// src is only read. An empty src yields an empty result.
//
// Rows are checked against ctx as they are painted; when ctx ends, Apply
// stops and returns the context error with no pixmap.
func (f *Filter) Apply(ctx context.Context, src *Pixmap) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	if f.closed.Load() {
		return nil, ErrFilterClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst := NewPixmap(src.width, src.height)
	if src.width == 0 || src.height == 0 {
		return dst, nil
	}

	log := f.logger()
	start := time.Now()
	log.Debug("oil paint: start",
		"width", src.width,
		"height", src.height,
		"radius", f.params.Radius,
		"levels", f.params.Levels,
		"intensity", f.params.Intensity,
		"workers", f.workers,
	)

	in, out := src.surface(), dst.surface()
	bands := parallel.SplitRows(in.Height, f.opts.bandHeight)

	// Bucket every source pixel once; painting reads neighbours across
	// band boundaries, so this pass must finish first.
	buckets := make([]int32, in.Width*in.Height)
	err := f.run(bands, func(b parallel.Band) {
		filter.BucketRows(in, buckets, f.core.Intensity, f.core.Levels, b.Y0, b.Y1)
	})
	if err != nil {
		return nil, err
	}

	var (
		progressMu sync.Mutex
		rowsDone   int
	)
	err = f.run(bands, func(b parallel.Band) {
		h := f.hists.Get(f.core.Levels)
		defer f.hists.Put(h)
		for y := b.Y0; y < b.Y1; y++ {
			if ctx.Err() != nil {
				return
			}
			f.core.PaintRows(in, out, buckets, h, y, y+1)
		}

		if f.opts.progress != nil {
			progressMu.Lock()
			rowsDone += b.Rows()
			f.opts.progress(rowsDone, in.Height)
			progressMu.Unlock()
		}
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		log.Warn("oil paint: cancelled", "error", err)
		return nil, fmt.Errorf("oilpaint: %w", err)
	}

	log.Debug("oil paint: done", "elapsed", time.Since(start))
	return dst, nil
}

// run executes fn for every band, on the pool when there is one.
func (f *Filter) run(bands []parallel.Band, fn func(parallel.Band)) error {
	if f.pool == nil {
		for _, b := range bands {
			fn(b)
		}
		return nil
	}
	if err := f.pool.Run(bands, fn); err != nil {
		if errors.Is(err, parallel.ErrPoolClosed) {
			return ErrFilterClosed
		}
		return err
	}
	return nil
}

// Apply paints src with the given radius and level count and the
// reference intensity factor (DefaultIntensity), using all CPUs.
//
// Invalid parameters are rejected before any work is done.
func Apply(src *Pixmap, radius, levels int) (*Pixmap, error) {
	p := Params{Radius: radius, Levels: levels, Intensity: DefaultIntensity}
	return ApplyContext(context.Background(), src, p)
}

// ApplyContext is Apply with explicit parameters, options and cancellation.
func ApplyContext(ctx context.Context, src *Pixmap, p Params, opts ...Option) (*Pixmap, error) {
	f, err := NewFilter(p, opts...)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Apply(ctx, src)
}
