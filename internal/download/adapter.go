package download

import (
	"context"
	"log"

	"github.com/ytget/yt-downloader-bot/internal/model"
	"github.com/ytget/yt-downloader-bot/internal/platform"
)

// Adapter wraps an Engine behind the per-job extraction contract
type Adapter struct {
	engine      Engine
	downloadDir string
	tuning      Tuning
	logger      *log.Logger
}

// NewAdapter creates an adapter writing into downloadDir
func NewAdapter(engine Engine, downloadDir string, tuning Tuning, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.Default()
	}
	return &Adapter{
		engine:      engine,
		downloadDir: downloadDir,
		tuning:      tuning,
		logger:      logger,
	}
}

// DownloadDir returns the shared drop zone the adapter writes into
func (a *Adapter) DownloadDir() string {
	return a.downloadDir
}

// Extract runs the engine for job and lists the files it produced.
// Any engine failure is returned as *model.ExtractionError.
func (a *Adapter) Extract(ctx context.Context, job *model.DownloadJob, progress ProgressFunc) ([]string, error) {
	opts := BuildOptions(job.Kind, a.downloadDir, job.ID, a.tuning)
	opts.Progress = progress

	a.logger.Printf("[JOB %s] extracting %s as %s", job.ID, job.TargetURL, job.Kind)
	if err := a.engine.Extract(ctx, job.TargetURL, opts); err != nil {
		return nil, &model.ExtractionError{Err: err}
	}

	files, err := platform.ListArtifacts(a.downloadDir, job.ID)
	if err != nil {
		return nil, &model.DeliveryError{Reason: "list produced files", Err: err}
	}
	a.logger.Printf("[JOB %s] engine produced %d file(s)", job.ID, len(files))
	return files, nil
}
