package oilpaint

import "log/slog"

// Option configures a Filter during creation.
//
// Example:
//
//	// Reference parameters, one worker per CPU
//	f, err := oilpaint.NewFilter(oilpaint.DefaultParams())
//
//	// Sequential run on the caller's goroutine
//	f, err := oilpaint.NewFilter(p, oilpaint.WithWorkers(1))
type Option func(*options)

// options holds optional Filter configuration.
type options struct {
	workers    int
	bandHeight int
	progress   func(done, total int)
	logger     *slog.Logger
}

// defaultOptions returns the default filter options.
func defaultOptions() options {
	return options{
		workers:    0, // GOMAXPROCS
		bandHeight: 0, // parallel.DefaultBandHeight
	}
}

// WithWorkers sets the number of worker goroutines. 0 or less uses
// GOMAXPROCS; 1 runs every row on the calling goroutine. Output is
// identical for every worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBandHeight sets how many rows make up one unit of parallel work.
// 0 or less uses the default; a value past the image height makes the
// whole image one band.
func WithBandHeight(rows int) Option {
	return func(o *options) {
		o.bandHeight = rows
	}
}

// WithProgress registers a callback invoked after each band of rows is
// painted, with the number of rows finished so far and the image height.
// Calls are serialized and done never decreases.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithLogger sets the logger for one filter, overriding SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
