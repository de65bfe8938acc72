package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// DefaultProgressInterval is how often yt-dlp reports progress
const DefaultProgressInterval = 500 * time.Millisecond

// YTDLPEngine runs the yt-dlp executable through go-ytdlp
type YTDLPEngine struct {
	logger *log.Logger
}

// NewYTDLPEngine creates an engine; a nil logger uses log.Default()
func NewYTDLPEngine(logger *log.Logger) *YTDLPEngine {
	if logger == nil {
		logger = log.Default()
	}
	return &YTDLPEngine{logger: logger}
}

// Extract downloads url according to opts
func (e *YTDLPEngine) Extract(ctx context.Context, url string, opts Options) error {
	dl := ytdlp.New().
		ForceOverwrites().
		Output(opts.OutputTemplate).
		Format(opts.Format)

	if opts.NoPlaylist {
		dl.NoPlaylist()
	}
	if opts.MergeOutputFormat != "" {
		dl.MergeOutputFormat(opts.MergeOutputFormat)
	}
	if opts.ExtractAudio {
		dl.ExtractAudio().
			AudioFormat(opts.AudioFormat).
			AudioQuality(opts.AudioQuality)
	}
	if opts.UserAgent != "" {
		dl.UserAgent(opts.UserAgent)
	}
	for _, header := range opts.Headers {
		dl.AddHeaders(header)
	}
	if opts.CookiesFile != "" {
		dl.Cookies(opts.CookiesFile)
	}
	if opts.FFmpegLocation != "" {
		dl.FFmpegLocation(opts.FFmpegLocation)
	}

	if opts.Progress != nil {
		dl.ProgressFunc(DefaultProgressInterval, func(update ytdlp.ProgressUpdate) {
			opts.Progress(toProgress(&update))
		})
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		e.logger.Printf("yt-dlp failed for %s: %v", url, err)
		if result != nil {
			if msg := lastErrorLine(result.Stderr); msg != "" {
				return errors.New(msg)
			}
		}
		return err
	}
	return nil
}

// toProgress converts a yt-dlp progress update into a model snapshot
func toProgress(update *ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{ETASec: -1}

	if update.TotalBytes > 0 {
		p.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			p.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	if eta := update.ETA(); eta > 0 {
		p.ETASec = int(eta.Seconds())
	}

	return p
}

// lastErrorLine picks the most specific yt-dlp error message from stderr
func lastErrorLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "ERROR:") {
			return line
		}
	}
	return ""
}
