package download

import (
	"context"
	"os"
	"strings"
	"sync"
)

// fakeEngine writes the configured extensions under the output template
type fakeEngine struct {
	mu    sync.Mutex
	exts  []string
	err   error
	calls []Options
	urls  []string
	block chan struct{}
}

func (f *fakeEngine) Extract(ctx context.Context, url string, opts Options) error {
	f.mu.Lock()
	f.calls = append(f.calls, opts)
	f.urls = append(f.urls, url)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for _, ext := range f.exts {
		path := strings.Replace(opts.OutputTemplate, "%(ext)s", ext, 1)
		if err := os.WriteFile(path, []byte("media"), 0644); err != nil {
			return err
		}
	}
	if opts.Progress != nil {
		opts.Progress(progressDone)
	}
	return f.err
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
