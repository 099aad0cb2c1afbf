package downloader

import (
	"net/url"
	"path"
	"path/filepath"

	"github.com/westchamp24/tnm-download-cli/dataset"
)

// Task is one fetch-and-write unit: a source URL and the local path the
// file is written to.
type Task struct {
	URL  string
	Dest string
}

// Outcome is the terminal state of one task. Err is nil on success.
type Outcome struct {
	Task Task
	Err  error
}

// Ok reports whether the task completed successfully.
func (o Outcome) Ok() bool {
	return o.Err == nil
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total    int
	Failed   int
	Failures []Outcome
}

// Summarize collects the failure count and the failed outcomes of a run.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if !o.Ok() {
			s.Failed++
			s.Failures = append(s.Failures, o)
		}
	}
	return s
}

// BuildTasks derives one task per dataset item. The destination is
// <outputDir>/<dataset name>/<basename of the URL path>; two items sharing
// a basename overwrite each other, last writer wins.
func BuildTasks(d dataset.Dataset, outputDir string) []Task {
	dir := filepath.Join(outputDir, d.Name)
	tasks := make([]Task, 0, len(d.Items))
	for _, item := range d.Items {
		tasks = append(tasks, Task{
			URL:  item.DownloadURL,
			Dest: filepath.Join(dir, basename(item.DownloadURL)),
		})
	}
	return tasks
}

// basename extracts the file name from the URL path, ignoring any query
// string or fragment.
func basename(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if name := path.Base(u.Path); name != "." && name != "/" {
			return name
		}
	}
	return filepath.Base(rawURL)
}
