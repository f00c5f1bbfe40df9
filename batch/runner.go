package batch

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/search"
)

// Result holds the outcome of one query in a batch.
type Result struct {
	Query string
	Rooms []*core.Room
	Err   error
}

// Runner searches batches of queries on a worker pool.
type Runner struct {
	searcher         *search.Searcher
	pool             *ants.Pool
	progress         io.Writer
	progressInterval int
	logger           *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithProgress writes progress to w every interval completed queries.
// Default is no progress output.
func WithProgress(w io.Writer, interval int) Option {
	return func(r *Runner) error {
		r.progress = w
		r.progressInterval = interval
		return nil
	}
}

// NewRunner creates a Runner that searches with searcher.
func NewRunner(searcher *search.Searcher, opts ...Option) (*Runner, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	pool, err := ants.NewPool(max(1, runtime.NumCPU()))
	if err != nil {
		return nil, err
	}

	r := &Runner{
		searcher: searcher,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// Run searches every query against rooms and annotations. Results are in
// query order. Queries not started before ctx is done carry ctx's error, and
// Run then also returns that error.
func (r *Runner) Run(ctx context.Context, queries []string, rooms []*core.Room, annotations core.Annotations) ([]Result, error) {
	results := make([]Result, len(queries))

	var tracker *ProgressTracker
	if r.progress != nil {
		tracker = NewProgressTracker(r.progress, len(queries), r.progressInterval)
		tracker.Start()
	}

	var wg sync.WaitGroup
	for i, q := range queries {
		results[i].Query = q
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			if tracker != nil {
				tracker.Record(0, err)
			}
			continue
		}

		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results[i].Err = err
			} else {
				results[i].Rooms = r.searcher.Search(q, rooms, annotations)
			}
			if tracker != nil {
				tracker.Record(len(results[i].Rooms), results[i].Err)
			}
		})
		if err != nil {
			wg.Done()
			r.logger.Error("error submitting query", "query", q, "err", err)
			results[i].Err = err
			if tracker != nil {
				tracker.Record(0, err)
			}
		}
	}
	wg.Wait()

	if tracker != nil {
		summary := tracker.Finish()
		r.logger.Debug("batch progress", "done", summary.Done, "empty", summary.Empty, "failed", summary.Failed, "elapsed", summary.Elapsed)
	}
	r.logger.Debug("batch complete", "queries", len(queries), "rooms", len(rooms))

	return results, ctx.Err()
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
