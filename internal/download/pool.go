package download

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// Parallelism bounds
const (
	MinParallel = 1
	MaxParallel = 10
)

// Pool runs extractions on background goroutines, at most maxParallel at once
type Pool struct {
	extractor   Extractor
	sem         *semaphore.Weighted
	maxParallel int
	activeCount atomic.Int32
}

// NewPool creates a pool; maxParallel is clamped to [MinParallel, MaxParallel]
func NewPool(extractor Extractor, maxParallel int) *Pool {
	if maxParallel < MinParallel {
		maxParallel = MinParallel
	}
	if maxParallel > MaxParallel {
		maxParallel = MaxParallel
	}
	return &Pool{
		extractor:   extractor,
		sem:         semaphore.NewWeighted(int64(maxParallel)),
		maxParallel: maxParallel,
	}
}

// Submit schedules job and returns a channel that yields exactly one Outcome
func (p *Pool) Submit(ctx context.Context, job *model.DownloadJob, progress ProgressFunc) <-chan Outcome {
	done := make(chan Outcome, 1)

	go func() {
		defer close(done)

		if err := p.sem.Acquire(ctx, 1); err != nil {
			done <- Outcome{Err: &model.ExtractionError{Err: fmt.Errorf("waiting for a free worker: %w", err)}}
			return
		}
		defer p.sem.Release(1)

		p.activeCount.Add(1)
		defer p.activeCount.Add(-1)

		done <- p.run(ctx, job, progress)
	}()

	return done
}

// ActiveCount returns the number of extractions currently running
func (p *Pool) ActiveCount() int {
	return int(p.activeCount.Load())
}

// MaxParallel returns the worker bound
func (p *Pool) MaxParallel() int {
	return p.maxParallel
}

func (p *Pool) run(ctx context.Context, job *model.DownloadJob, progress ProgressFunc) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: &model.ExtractionError{Err: fmt.Errorf("extraction panicked: %v", r)}}
		}
	}()

	files, err := p.extractor.Extract(ctx, job, progress)
	return Outcome{Files: files, Err: err}
}
