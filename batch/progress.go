package batch

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Summary counts the outcomes of a batch.
type Summary struct {
	Total   int
	Done    int
	Empty   int // queries that matched no rooms
	Failed  int
	Elapsed time.Duration
}

// Rate returns completed queries per second.
func (s Summary) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Done) / s.Elapsed.Seconds()
}

// ProgressTracker reports how far a batch has got on a writer, one line
// rewritten in place every reportInterval queries.
type ProgressTracker struct {
	writer         io.Writer
	reportInterval int
	lastReported   int
	startTime      time.Time
	started        bool
	summary        Summary
	mu             sync.Mutex
}

// NewProgressTracker creates a tracker for a batch of total queries.
// An interval below 1 reports after every query.
func NewProgressTracker(writer io.Writer, total, reportInterval int) *ProgressTracker {
	return &ProgressTracker{
		writer:         writer,
		reportInterval: max(reportInterval, 1),
		summary:        Summary{Total: total},
	}
}

// Start resets the counters and starts the clock.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.lastReported = 0
	p.summary = Summary{Total: p.summary.Total}
}

// Record counts one finished query that returned rooms results, or failed with err.
func (p *ProgressTracker) Record(rooms int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.summary.Done >= p.summary.Total {
		return
	}

	p.summary.Done++
	switch {
	case err != nil:
		p.summary.Failed++
	case rooms == 0:
		p.summary.Empty++
	}

	if p.summary.Done-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.summary.Done
	}
}

// Finish prints the final line and returns the counts.
func (p *ProgressTracker) Finish() Summary {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return p.summary
	}

	p.report()
	fmt.Fprintln(p.writer)
	p.started = false
	return p.summary
}

// report writes the current line. Must be called with lock held.
func (p *ProgressTracker) report() {
	p.summary.Elapsed = time.Since(p.startTime)

	percentage := 0.0
	if p.summary.Total > 0 {
		percentage = float64(p.summary.Done) / float64(p.summary.Total) * 100.0
	}

	fmt.Fprintf(p.writer, "\rSearched: %d/%d (%.1f%%), %d empty, %d failed - %.1f queries/s",
		p.summary.Done, p.summary.Total, percentage, p.summary.Empty, p.summary.Failed, p.summary.Rate())
}
