package download

import (
	"context"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// ProgressFunc receives progress snapshots of a running extraction
type ProgressFunc func(model.Progress)

// Engine is the external extraction/transcode routine. It writes one or
// more files named after opts.OutputTemplate and returns when done.
type Engine interface {
	Extract(ctx context.Context, url string, opts Options) error
}

// Extractor runs one job through the engine and reports the produced files.
type Extractor interface {
	Extract(ctx context.Context, job *model.DownloadJob, progress ProgressFunc) ([]string, error)
}

// Scheduler hands jobs to workers and returns a future for the outcome.
type Scheduler interface {
	Submit(ctx context.Context, job *model.DownloadJob, progress ProgressFunc) <-chan Outcome
}

// Outcome is the tagged result of one extraction: either Files or Err
type Outcome struct {
	Files []string
	Err   error
}
