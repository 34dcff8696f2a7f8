package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned when work is submitted to a closed pool.
var ErrPoolClosed = errors.New("parallel: pool closed")

// task is one band of work plus the group it reports completion to.
type task struct {
	band Band
	fn   func(Band)
	done *sync.WaitGroup
}

// WorkerPool runs band tasks on a fixed set of goroutines.
//
// Each worker owns a queue. Bands are dealt round-robin; a worker whose
// queue is empty steals from the others, which evens out bands whose cost
// differs (image edges are cheaper than the interior).
//
// Thread safety: WorkerPool is safe for concurrent use. Several Run calls
// may share one pool.
type WorkerPool struct {
	workers int
	queues  []chan task
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held shared while a Run submits, so Close never closes done
	// with a submission in flight.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan task, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan task, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case t := <-own:
			t.run()
			continue
		default:
		}

		if t, ok := p.steal(id); ok {
			t.run()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case t := <-own:
			t.run()
		}
	}
}

func (t task) run() {
	defer t.done.Done()
	t.fn(t.band)
}

// drain runs whatever is left in queue.
func (p *WorkerPool) drain(queue chan task) {
	for {
		select {
		case t := <-queue:
			t.run()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue.
func (p *WorkerPool) steal(self int) (task, bool) {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case t := <-p.queues[i]:
			return t, true
		default:
		}
	}
	return task{}, false
}

// Run calls fn once per band on the pool and waits for all calls to
// return. fn must be safe to call concurrently for distinct bands.
func (p *WorkerPool) Run(bands []Band, fn func(Band)) error {
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return ErrPoolClosed
	}

	var group sync.WaitGroup
	group.Add(len(bands))
	for i, b := range bands {
		p.queues[i%p.workers] <- task{band: b, fn: fn, done: &group}
	}
	p.mu.RUnlock()

	group.Wait()
	return nil
}

// Close stops the pool after queued work has finished.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
