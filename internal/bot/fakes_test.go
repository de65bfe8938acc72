package bot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ytget/yt-downloader-bot/internal/download"
	"github.com/ytget/yt-downloader-bot/internal/model"
)

type sentFile struct {
	ChatID  int64
	Path    string
	Caption string
	Existed bool
}

// fakeMessenger records every call and hands out increasing message ids
type fakeMessenger struct {
	mu        sync.Mutex
	nextID    int
	texts     []string
	prompts   []string
	choices   [][]Choice
	edits     []string
	deleted   []MessageRef
	videos    []sentFile
	audios    []sentFile
	answers   map[string]string
	sendErr   error
	editErr   error
	deleteErr error
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{nextID: 100, answers: make(map[string]string)}
}

func (f *fakeMessenger) SendText(chatID int64, text string) (MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	f.nextID++
	return MessageRef{ChatID: chatID, MessageID: f.nextID}, nil
}

func (f *fakeMessenger) SendChoices(chatID int64, text string, choices []Choice) (MessageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, text)
	f.choices = append(f.choices, choices)
	f.nextID++
	return MessageRef{ChatID: chatID, MessageID: f.nextID}, nil
}

func (f *fakeMessenger) EditText(ref MessageRef, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return f.editErr
	}
	f.edits = append(f.edits, text)
	return nil
}

func (f *fakeMessenger) DeleteMessage(ref MessageRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ref)
	return f.deleteErr
}

func (f *fakeMessenger) SendVideo(chatID int64, path, caption string) error {
	return f.recordFile(&f.videos, chatID, path, caption)
}

func (f *fakeMessenger) SendAudio(chatID int64, path, caption string) error {
	return f.recordFile(&f.audios, chatID, path, caption)
}

func (f *fakeMessenger) recordFile(dst *[]sentFile, chatID int64, path, caption string) error {
	_, statErr := os.Stat(path)

	f.mu.Lock()
	defer f.mu.Unlock()
	*dst = append(*dst, sentFile{ChatID: chatID, Path: path, Caption: caption, Existed: statErr == nil})
	return f.sendErr
}

func (f *fakeMessenger) AnswerCallback(callbackID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers[callbackID] = text
	return nil
}

func (f *fakeMessenger) snapshotTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

// fakeScheduler runs extractions synchronously: it writes the listed file
// names (relative to dir, "%s" replaced by the job id) and returns err
type fakeScheduler struct {
	mu       sync.Mutex
	dir      string
	files    []string
	err      error
	panicVal any
	progress []model.Progress
	jobs     []*model.DownloadJob
}

func (s *fakeScheduler) Submit(ctx context.Context, job *model.DownloadJob, progress download.ProgressFunc) <-chan download.Outcome {
	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	if s.panicVal != nil {
		panic(s.panicVal)
	}

	done := make(chan download.Outcome, 1)
	var files []string
	for _, name := range s.files {
		path := filepath.Join(s.dir, strings.ReplaceAll(name, "%s", job.ID))
		if err := os.WriteFile(path, []byte("media"), 0o644); err != nil {
			done <- download.Outcome{Err: err}
			close(done)
			return done
		}
		files = append(files, path)
	}
	for _, p := range s.progress {
		progress(p)
	}

	if s.err != nil {
		done <- download.Outcome{Err: s.err}
	} else {
		done <- download.Outcome{Files: files}
	}
	close(done)
	return done
}

func (s *fakeScheduler) submitted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

var errEngine = errors.New("ERROR: [youtube] abc: Video unavailable")
