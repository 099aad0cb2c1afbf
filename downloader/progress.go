package downloader

import (
	"github.com/schollz/progressbar/v3"
)

// ProgressReporter receives one unit of progress per task reaching a
// terminal state. The engine drives it from a single goroutine, so
// implementations need no internal locking.
type ProgressReporter interface {
	// Start begins a new indicator for a dataset with the given task count
	Start(name string, total int)

	// Advance moves the indicator forward by one completed task
	Advance()

	// Finish closes out the current indicator
	Finish()
}

// BarReporter renders progress as a terminal progress bar, one bar per
// dataset.
type BarReporter struct {
	bar *progressbar.ProgressBar
}

// NewBarReporter creates a terminal progress reporter
func NewBarReporter() *BarReporter {
	return &BarReporter{}
}

// Start implements ProgressReporter
func (r *BarReporter) Start(name string, total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(name),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionEnableColorCodes(true),
	)
}

// Advance implements ProgressReporter
func (r *BarReporter) Advance() {
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}

// Finish implements ProgressReporter
func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

// NopReporter discards all progress updates. Used in tests and when the
// engine runs non-interactively.
type NopReporter struct{}

func (NopReporter) Start(name string, total int) {}
func (NopReporter) Advance()                     {}
func (NopReporter) Finish()                      {}
