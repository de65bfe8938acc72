package download

// Package download implements the extraction side of the bot built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It builds per-kind engine
// options, runs extractions on a bounded worker pool off the update loop and
// reports the produced files for a job back as a future.
