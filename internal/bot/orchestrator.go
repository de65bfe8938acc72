package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ytget/yt-downloader-bot/internal/download"
	"github.com/ytget/yt-downloader-bot/internal/model"
	"github.com/ytget/yt-downloader-bot/internal/platform"
	"github.com/ytget/yt-downloader-bot/internal/session"
)

// DefaultProgressInterval is the minimum gap between two progress edits
const DefaultProgressInterval = 3 * time.Second

// Selection is a user's format choice on a prompt
type Selection struct {
	UserID     int64
	ChatID     int64
	CallbackID string
	Kind       model.Kind
	Prompt     MessageRef // the prompt message; reused as the status message
}

// Orchestrator drives one selection through download, delivery and cleanup
type Orchestrator struct {
	store            session.Store
	scheduler        download.Scheduler
	messenger        Messenger
	texts            *Localization
	downloadDir      string
	progressInterval time.Duration
	newJobID         func(userID int64) string
	logger           *log.Logger
}

// NewOrchestrator creates an orchestrator writing artifacts to downloadDir
func NewOrchestrator(store session.Store, scheduler download.Scheduler, messenger Messenger, texts *Localization, downloadDir string, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		store:            store,
		scheduler:        scheduler,
		messenger:        messenger,
		texts:            texts,
		downloadDir:      downloadDir,
		progressInterval: DefaultProgressInterval,
		newJobID:         download.NewJobID,
		logger:           logger,
	}
}

// SetProgressInterval sets the progress edit throttle; zero disables progress edits
func (o *Orchestrator) SetProgressInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	o.progressInterval = interval
}

// HandleSelection runs the whole job for sel and returns it in a terminal
// state. Whatever happens, the job's files, the status message and the
// user's session are released before it returns.
func (o *Orchestrator) HandleSelection(ctx context.Context, sel Selection) (*model.DownloadJob, error) {
	job := &model.DownloadJob{
		UserID:    sel.UserID,
		ChatID:    sel.ChatID,
		Kind:      sel.Kind,
		State:     model.JobStateAwaitingChoice,
		StartedAt: time.Now(),
	}

	sess, ok := o.store.Take(sel.UserID)
	if !ok {
		o.fail(job, model.ErrExpiredLink)
		o.answer(sel.CallbackID, o.texts.GetText(KeyExpiredLink))
		o.store.Discard(sel.UserID)
		o.logger.Printf("[USER %d] selection without a stored link", sel.UserID)
		return job, model.ErrExpiredLink
	}
	o.answer(sel.CallbackID, "")

	job.ID = o.newJobID(sel.UserID)
	job.TargetURL = sess.SourceURL
	tag := fmt.Sprintf("[JOB %s]", job.ID)

	cleanup := newCleanupStack(o.logger, tag)
	defer cleanup.Run()
	cleanup.Push("session", func() error {
		o.store.Discard(sel.UserID)
		return nil
	})

	o.moveTo(job, model.JobStateDownloading)
	o.logger.Printf("%s starting %s download of %s", tag, job.Kind, job.TargetURL)

	status := o.openStatus(sel, o.texts.Format(KeyDownloading, extensionLabel(job.Kind)))
	if status != nil {
		cleanup.Push("status message", func() error {
			return o.messenger.DeleteMessage(*status)
		})
	}
	cleanup.Push("files", func() error {
		removed, err := platform.RemoveArtifacts(o.downloadDir, job.ID)
		if len(removed) > 0 {
			o.logger.Printf("%s removed %d file(s)", tag, len(removed))
		}
		return err
	})

	if err := o.execute(ctx, job, status); err != nil {
		o.fail(job, err)
		o.logger.Printf("%s failed: %v", tag, err)
		o.notifyFailure(job, err)
		return job, err
	}

	o.moveTo(job, model.JobStateDone)
	o.logger.Printf("%s delivered in %s", tag, job.FinishedAt.Sub(job.StartedAt).Round(time.Millisecond))
	return job, nil
}

// execute runs extraction and delivery; panics come back as errors
func (o *Orchestrator) execute(ctx context.Context, job *model.DownloadJob, status *MessageRef) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	reporter := newProgressReporter(o.progressInterval, func(p model.Progress) {
		o.editStatus(job, status, o.progressText(job.Kind, p))
	})
	outcome := <-o.scheduler.Submit(ctx, job, reporter.Report)
	reporter.Stop()

	if outcome.Err != nil {
		var extractionErr *model.ExtractionError
		if !errors.As(outcome.Err, &extractionErr) {
			return &model.ExtractionError{Err: outcome.Err}
		}
		return outcome.Err
	}

	o.moveTo(job, model.JobStateDelivering)

	path, err := platform.FindArtifact(o.downloadDir, job.ID, job.Kind.Extension())
	if err != nil {
		o.logger.Printf("[JOB %s] %v (engine produced %d file(s))", job.ID, err, len(outcome.Files))
		return &model.DeliveryError{Reason: "locate result file", Err: model.ErrArtifactNotFound}
	}
	result := model.ResultFile{Path: path, Kind: job.Kind}

	o.editStatus(job, status, o.texts.GetText(KeySending))

	if err := o.deliver(job.ChatID, result); err != nil {
		return &model.DeliveryError{Reason: "send to chat", Err: err}
	}
	return nil
}

func (o *Orchestrator) deliver(chatID int64, result model.ResultFile) error {
	switch result.Kind {
	case model.KindAudio:
		return o.messenger.SendAudio(chatID, result.Path, o.texts.GetText(KeyAudioCaption))
	default:
		return o.messenger.SendVideo(chatID, result.Path, o.texts.GetText(KeyVideoCaption))
	}
}

// openStatus turns the prompt into the status message, or sends a new one
func (o *Orchestrator) openStatus(sel Selection, text string) *MessageRef {
	if sel.Prompt.MessageID != 0 {
		err := o.messenger.EditText(sel.Prompt, text)
		if err == nil {
			ref := sel.Prompt
			return &ref
		}
		o.logger.Printf("[USER %d] failed to edit prompt: %v", sel.UserID, err)
	}

	ref, err := o.messenger.SendText(sel.ChatID, text)
	if err != nil {
		o.logger.Printf("[USER %d] failed to send status message: %v", sel.UserID, err)
		return nil
	}
	return &ref
}

func (o *Orchestrator) editStatus(job *model.DownloadJob, status *MessageRef, text string) {
	if status == nil {
		return
	}
	if err := o.messenger.EditText(*status, text); err != nil {
		o.logger.Printf("[JOB %s] failed to update status: %v", job.ID, err)
	}
}

func (o *Orchestrator) notifyFailure(job *model.DownloadJob, err error) {
	text := o.texts.Format(KeyErrorNotice, o.describe(err))
	if _, sendErr := o.messenger.SendText(job.ChatID, text); sendErr != nil {
		o.logger.Printf("[JOB %s] failed to report error to user: %v", job.ID, sendErr)
	}
}

// describe returns the user-facing reason for err
func (o *Orchestrator) describe(err error) string {
	if errors.Is(err, model.ErrArtifactNotFound) {
		return o.texts.GetText(KeyArtifactNotFound)
	}
	return err.Error()
}

func (o *Orchestrator) answer(callbackID, text string) {
	if callbackID == "" {
		return
	}
	if err := o.messenger.AnswerCallback(callbackID, text); err != nil {
		o.logger.Printf("failed to answer callback %s: %v", callbackID, err)
	}
}

func (o *Orchestrator) moveTo(job *model.DownloadJob, next model.JobState) {
	if err := job.Transition(next); err != nil {
		o.logger.Printf("[JOB %s] %v", job.ID, err)
	}
}

func (o *Orchestrator) fail(job *model.DownloadJob, err error) {
	job.LastError = err.Error()
	o.moveTo(job, model.JobStateFailed)
}

func (o *Orchestrator) progressText(kind model.Kind, p model.Progress) string {
	speed := p.Speed
	if speed == "" {
		speed = "—"
	}
	return o.texts.Format(KeyProgress, extensionLabel(kind), p.Percent, speed, p.GetETAString())
}

func extensionLabel(kind model.Kind) string {
	return strings.ToUpper(kind.Extension())
}
