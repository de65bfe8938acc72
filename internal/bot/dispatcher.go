package bot

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/yt-downloader-bot/internal/model"
)

// Dispatcher routes Telegram updates to the intake and the orchestrator
type Dispatcher struct {
	intake       *Intake
	orchestrator *Orchestrator
	messenger    Messenger
	texts        *Localization
	logger       *log.Logger
	jobs         sync.WaitGroup
}

// NewDispatcher creates an update router
func NewDispatcher(intake *Intake, orchestrator *Orchestrator, messenger Messenger, texts *Localization, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		intake:       intake,
		orchestrator: orchestrator,
		messenger:    messenger,
		texts:        texts,
		logger:       logger,
	}
}

// Run consumes updates until ctx is done or the channel closes, then waits
// for the selections still in flight
func (d *Dispatcher) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	defer d.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			d.HandleUpdate(ctx, update)
		}
	}
}

// Wait blocks until all started selections have finished
func (d *Dispatcher) Wait() {
	d.jobs.Wait()
}

// HandleUpdate routes one update. Selections run on their own goroutine so
// a long download never blocks other users.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.handleMessage(update.Message)
	}
}

func (d *Dispatcher) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	if msg.IsCommand() {
		if msg.Command() == "start" {
			if _, err := d.messenger.SendText(msg.Chat.ID, d.texts.GetText(KeyStart)); err != nil {
				d.logger.Printf("[USER %d] failed to greet: %v", msg.From.ID, err)
			}
		}
		return
	}

	if msg.Text == "" {
		return
	}
	err := d.intake.HandleMessage(msg.From.ID, msg.Chat.ID, msg.Text)
	if err != nil && !errors.Is(err, model.ErrUnrecognizedLink) {
		d.logger.Printf("[USER %d] intake failed: %v", msg.From.ID, err)
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.From == nil || !strings.HasPrefix(query.Data, CallbackPrefix) {
		return
	}

	kind, ok := KindForTag(query.Data)
	if !ok {
		if err := d.messenger.AnswerCallback(query.ID, ""); err != nil {
			d.logger.Printf("[USER %d] failed to answer callback: %v", query.From.ID, err)
		}
		return
	}

	sel := Selection{
		UserID:     query.From.ID,
		CallbackID: query.ID,
		Kind:       kind,
		ChatID:     query.From.ID,
	}
	if query.Message != nil && query.Message.Chat != nil {
		sel.ChatID = query.Message.Chat.ID
		sel.Prompt = MessageRef{ChatID: query.Message.Chat.ID, MessageID: query.Message.MessageID}
	}

	d.jobs.Add(1)
	go func() {
		defer d.jobs.Done()
		if _, err := d.orchestrator.HandleSelection(ctx, sel); err != nil {
			d.logger.Printf("[USER %d] selection ended with error: %v", sel.UserID, err)
		}
	}()
}
