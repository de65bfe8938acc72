package bot

import (
	"sync"
	"time"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// progressReporter throttles progress snapshots into status edits.
// After Stop returns no further edit is made.
type progressReporter struct {
	mu          sync.Mutex
	interval    time.Duration
	edit        func(model.Progress)
	now         func() time.Time
	last        time.Time
	lastPercent int
	stopped     bool
}

func newProgressReporter(interval time.Duration, edit func(model.Progress)) *progressReporter {
	return &progressReporter{
		interval:    interval,
		edit:        edit,
		now:         time.Now,
		lastPercent: -1,
	}
}

// Report is safe to call from the engine goroutine
func (r *progressReporter) Report(p model.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped || r.interval <= 0 {
		return
	}
	if p.Percent == r.lastPercent {
		return
	}
	now := r.now()
	if !r.last.IsZero() && now.Sub(r.last) < r.interval {
		return
	}

	r.last = now
	r.lastPercent = p.Percent
	r.edit(p)
}

// Stop disables further edits and waits for an in-flight one
func (r *progressReporter) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}
