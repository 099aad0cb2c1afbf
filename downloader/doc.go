// Package downloader implements the concurrent batch download engine.
//
// The engine processes selected datasets one at a time: it materializes a
// directory per dataset, dispatches the dataset's download tasks to a
// bounded worker pool, advances a progress indicator once per completed
// task, and collects a per-task outcome. A failing task never aborts its
// siblings; the engine returns only after every task has reached a
// terminal state.
package downloader
