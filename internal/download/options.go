package download

import (
	"path/filepath"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// yt-dlp selectors and post-processing settings
const (
	VideoFormatSelector = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	AudioFormatSelector = "bestaudio/best"

	MergeFormatMP4      = "mp4"
	AudioCodecMP3       = "mp3"
	DefaultAudioQuality = "192K"

	// The engine substitutes the real extension
	OutputExtensionTemplate = ".%(ext)s"
)

// Tuning holds the network identity and tool overrides applied to every job
type Tuning struct {
	UserAgent      string
	Headers        []string // "Key:Value" pairs
	CookiesFile    string
	FFmpegLocation string
	AudioQuality   string
}

// Options is the engine configuration for one job
type Options struct {
	OutputTemplate    string
	Format            string
	MergeOutputFormat string
	ExtractAudio      bool
	AudioFormat       string
	AudioQuality      string
	NoPlaylist        bool

	UserAgent      string
	Headers        []string
	CookiesFile    string
	FFmpegLocation string

	Progress ProgressFunc
}

// BuildOptions returns the engine options for kind, writing under dir with
// jobID as the filename prefix
func BuildOptions(kind model.Kind, dir, jobID string, tuning Tuning) Options {
	opts := Options{
		OutputTemplate: filepath.Join(dir, jobID+OutputExtensionTemplate),
		NoPlaylist:     true,
		UserAgent:      tuning.UserAgent,
		Headers:        append([]string(nil), tuning.Headers...),
		CookiesFile:    tuning.CookiesFile,
		FFmpegLocation: tuning.FFmpegLocation,
	}

	switch kind {
	case model.KindAudio:
		opts.Format = AudioFormatSelector
		opts.ExtractAudio = true
		opts.AudioFormat = AudioCodecMP3
		opts.AudioQuality = tuning.AudioQuality
		if opts.AudioQuality == "" {
			opts.AudioQuality = DefaultAudioQuality
		}
	default:
		opts.Format = VideoFormatSelector
		opts.MergeOutputFormat = MergeFormatMP4
	}

	return opts
}
