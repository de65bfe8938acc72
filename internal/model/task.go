package model

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the media type a user asked for
type Kind string

const (
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Extension returns the container extension the delivered file must carry
func (k Kind) Extension() string {
	switch k {
	case KindAudio:
		return "mp3"
	default:
		return "mp4"
	}
}

// IsValid reports whether k is one of the supported kinds
func (k Kind) IsValid() bool {
	return k == KindVideo || k == KindAudio
}

// Session is the pending link a user submitted and has not yet picked a format for
type Session struct {
	UserID    int64
	SourceURL string
	CreatedAt time.Time
}

// DownloadJob represents one extraction and delivery attempt
type DownloadJob struct {
	ID         string
	UserID     int64
	ChatID     int64
	Kind       Kind
	TargetURL  string
	State      JobState
	LastError  string    // last error message if any
	StartedAt  time.Time // when the format was selected
	FinishedAt time.Time // when the terminal step ran
}

// Transition moves the job to next, rejecting steps the state table forbids
func (j *DownloadJob) Transition(next JobState) error {
	if !j.State.CanTransition(next) {
		return fmt.Errorf("illegal job transition %s -> %s", j.State, next)
	}
	j.State = next
	if next.IsFinished() {
		j.FinishedAt = time.Now()
	}
	return nil
}

// ResultFile is an artifact produced by the extraction engine
type ResultFile struct {
	Path string
	Kind Kind
}

// Progress is a snapshot of a running extraction
type Progress struct {
	Percent int    // 0 to 100
	Speed   string // human readable speed (e.g., "1.2MB/s")
	ETASec  int    // ETA in seconds, -1 if unknown
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (p Progress) GetETAString() string {
	if p.ETASec <= 0 {
		return "—"
	}

	hours := p.ETASec / 3600
	minutes := (p.ETASec % 3600) / 60
	seconds := p.ETASec % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}
