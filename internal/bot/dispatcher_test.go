package bot

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytget/yt-downloader-bot/internal/platform"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *orchestratorFixture) {
	t.Helper()

	f := newOrchestratorFixture(t)
	logger := log.New(io.Discard, "", 0)
	intake := NewIntake(f.store, platform.NewLinkMatcher(), f.messenger, f.texts, logger)
	return NewDispatcher(intake, f.orch, f.messenger, f.texts, logger), f
}

func textUpdate(text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: testUser},
		Chat:      &tgbotapi.Chat{ID: testChat},
		Text:      text,
	}
	if len(text) > 0 && text[0] == '/' {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	}
	return tgbotapi.Update{Message: msg}
}

func callbackUpdate(data string, promptID int) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: testUser},
		Message: &tgbotapi.Message{
			MessageID: promptID,
			Chat:      &tgbotapi.Chat{ID: testChat},
		},
		Data: data,
	}}
}

func TestDispatcher_Start(t *testing.T) {
	d, f := newTestDispatcher(t)

	d.HandleUpdate(context.Background(), textUpdate("/start"))

	texts := f.messenger.snapshotTexts()
	if len(texts) != 1 || texts[0] != f.texts.GetText(KeyStart) {
		t.Errorf("texts = %q", texts)
	}
}

func TestDispatcher_LinkThenSelection(t *testing.T) {
	d, f := newTestDispatcher(t)
	f.scheduler.files = []string{"%s.mp3"}

	d.HandleUpdate(context.Background(), textUpdate(testURL))
	if len(f.messenger.prompts) != 1 {
		t.Fatalf("prompts = %q", f.messenger.prompts)
	}

	d.HandleUpdate(context.Background(), callbackUpdate(TagAudio, 7))
	d.Wait()

	if len(f.messenger.audios) != 1 {
		t.Fatalf("audios = %d, want 1", len(f.messenger.audios))
	}
	if f.messenger.audios[0].ChatID != testChat {
		t.Errorf("ChatID = %d", f.messenger.audios[0].ChatID)
	}
	if len(f.messenger.deleted) != 1 || f.messenger.deleted[0].MessageID != 7 {
		t.Errorf("deleted = %v", f.messenger.deleted)
	}
	if f.store.Len() != 0 {
		t.Error("session should be gone")
	}
}

func TestDispatcher_IgnoresNoise(t *testing.T) {
	d, f := newTestDispatcher(t)

	d.HandleUpdate(context.Background(), textUpdate("just chatting"))
	d.HandleUpdate(context.Background(), textUpdate("/help"))
	d.HandleUpdate(context.Background(), callbackUpdate("other_button", 7))
	d.HandleUpdate(context.Background(), tgbotapi.Update{})
	d.Wait()

	if len(f.messenger.texts)+len(f.messenger.prompts)+len(f.messenger.edits) != 0 {
		t.Error("no reply expected")
	}
	if f.scheduler.submitted() != 0 {
		t.Error("no job expected")
	}
}

func TestDispatcher_UnknownFormatIsAnswered(t *testing.T) {
	d, f := newTestDispatcher(t)
	f.store.Put(testUser, testURL)

	d.HandleUpdate(context.Background(), callbackUpdate("dl_webm", 7))
	d.Wait()

	if _, ok := f.messenger.answers["cb-1"]; !ok {
		t.Error("callback must be answered")
	}
	if f.scheduler.submitted() != 0 {
		t.Error("no job expected")
	}
}

func TestDispatcher_RunStopsWhenChannelCloses(t *testing.T) {
	d, f := newTestDispatcher(t)
	f.scheduler.files = []string{"%s.mp4"}

	updates := make(chan tgbotapi.Update, 2)
	updates <- textUpdate(testURL)
	updates <- callbackUpdate(TagVideo, 7)
	close(updates)

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background(), updates) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}

	if len(f.messenger.videos) != 1 {
		t.Errorf("videos = %d, want 1 after Run waited for the job", len(f.messenger.videos))
	}
}

func TestDispatcher_RunStopsOnCancel(t *testing.T) {
	d, _ := newTestDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx, make(chan tgbotapi.Update)); err != nil {
		t.Errorf("Run returned %v", err)
	}
}
