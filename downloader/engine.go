package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/westchamp24/tnm-download-cli/dataset"
)

// DefaultWorkers is the worker pool size used when none is configured.
const DefaultWorkers = 5

// Engine downloads the items of selected datasets. Datasets are processed
// sequentially; concurrency is applied within a dataset's task set.
type Engine struct {
	workers     int
	client      *http.Client
	logger      *zap.Logger
	reporter    ProgressReporter
	taskTimeout time.Duration
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers sets the worker pool size. Non-positive values fall back to
// DefaultWorkers.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithHTTPClient sets the HTTP client used for fetches
func WithHTTPClient(c *http.Client) Option {
	return func(e *Engine) {
		if c != nil {
			e.client = c
		}
	}
}

// WithReporter sets the progress reporter
func WithReporter(r ProgressReporter) Option {
	return func(e *Engine) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithTaskTimeout bounds each individual fetch. Zero means no per-task
// timeout.
func WithTaskTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.taskTimeout = d
	}
}

// NewEngine creates a download engine
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		workers:  DefaultWorkers,
		client:   &http.Client{},
		logger:   logger,
		reporter: NewBarReporter(),
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DownloadAll processes the selected datasets in input order and returns
// the outcome of every task. Per-task failures are recorded, logged, and
// never abort the run; the engine returns once every dataset's task set
// has fully drained. Cancelling the context stops dispatching new tasks,
// records the remainder as cancelled, and lets in-flight fetches finish.
func (e *Engine) DownloadAll(ctx context.Context, datasets []dataset.Dataset, outputDir string) []Outcome {
	var outcomes []Outcome
	for _, d := range datasets {
		outcomes = append(outcomes, e.downloadDataset(ctx, d, outputDir)...)
		if ctx.Err() != nil {
			break
		}
	}
	return outcomes
}

func (e *Engine) downloadDataset(ctx context.Context, d dataset.Dataset, outputDir string) []Outcome {
	tasks := BuildTasks(d, outputDir)
	if len(tasks) == 0 {
		return nil
	}

	dir := filepath.Join(outputDir, d.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		// The whole dataset fails; remaining datasets still run.
		e.logger.Error("creating dataset directory failed",
			zap.String("dataset", d.Name),
			zap.String("dir", dir),
			zap.Error(err))
		fsErr := NewDownloadErrorWithCause(ErrorFileSystem, "creating dataset directory "+dir, err)
		outcomes := make([]Outcome, len(tasks))
		for i, task := range tasks {
			outcomes[i] = Outcome{Task: task, Err: fsErr}
		}
		return outcomes
	}

	e.logger.Info("starting dataset download",
		zap.String("dataset", d.Name),
		zap.Int("items", len(tasks)),
		zap.Int("workers", e.workers))

	e.reporter.Start(d.Name, len(tasks))
	defer e.reporter.Finish()

	taskCh := make(chan Task)
	resultCh := make(chan Outcome)

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				resultCh <- Outcome{Task: task, Err: e.fetch(ctx, task)}
			}
		}()
	}

	go func() {
		for i, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				close(taskCh)
				cancelErr := NewDownloadErrorWithCause(ErrorCancelled, "download cancelled", ctx.Err())
				for _, rest := range tasks[i:] {
					resultCh <- Outcome{Task: rest, Err: cancelErr}
				}
				return
			}
		}
		close(taskCh)
	}()

	// Single consumer: the progress indicator advances once per terminal
	// task state, in completion order.
	outcomes := make([]Outcome, 0, len(tasks))
	for range tasks {
		out := <-resultCh
		if !out.Ok() {
			e.logger.Warn("download task failed",
				zap.String("dataset", d.Name),
				zap.String("url", out.Task.URL),
				zap.String("dest", out.Task.Dest),
				zap.Error(out.Err))
		}
		e.reporter.Advance()
		outcomes = append(outcomes, out)
	}
	wg.Wait()

	return outcomes
}

// fetch performs the blocking fetch-and-write of one task, overwriting the
// destination if present.
func (e *Engine) fetch(ctx context.Context, task Task) error {
	if e.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.taskTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return NewDownloadErrorWithCause(ErrorInvalidURL, "building request for "+task.URL, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return NewDownloadErrorWithCause(ErrorCancelled, "fetching "+task.URL, err)
		}
		return NewDownloadErrorWithCause(ErrorNetworkFailure, "fetching "+task.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewDownloadError(ErrorHTTPStatus, fmt.Sprintf("HTTP %d fetching %s", resp.StatusCode, task.URL))
	}

	out, err := os.Create(task.Dest)
	if err != nil {
		return NewDownloadErrorWithCause(ErrorFileSystem, "creating "+task.Dest, err)
	}

	_, copyErr := io.Copy(out, resp.Body)
	closeErr := out.Close()
	if copyErr != nil {
		return NewDownloadErrorWithCause(ErrorNetworkFailure, "writing "+task.Dest, copyErr)
	}
	if closeErr != nil {
		return NewDownloadErrorWithCause(ErrorFileSystem, "closing "+task.Dest, closeErr)
	}
	return nil
}
