package bot

import (
	"log"

	"github.com/ytget/yt-downloader-bot/internal/platform"
	"github.com/ytget/yt-downloader-bot/internal/session"
)

// Intake stores submitted links and shows the format prompt
type Intake struct {
	store     session.Store
	matcher   *platform.LinkMatcher
	messenger Messenger
	texts     *Localization
	logger    *log.Logger
}

// NewIntake creates a link intake handler
func NewIntake(store session.Store, matcher *platform.LinkMatcher, messenger Messenger, texts *Localization, logger *log.Logger) *Intake {
	if logger == nil {
		logger = log.Default()
	}
	return &Intake{
		store:     store,
		matcher:   matcher,
		messenger: messenger,
		texts:     texts,
		logger:    logger,
	}
}

// HandleMessage stores a recognized link for userID and offers the two
// formats. Other text yields model.ErrUnrecognizedLink and no reply.
func (h *Intake) HandleMessage(userID, chatID int64, text string) error {
	url, err := h.matcher.Match(text)
	if err != nil {
		return err
	}

	h.store.Put(userID, url)
	h.logger.Printf("[USER %d] link stored: %s", userID, url)

	choices := []Choice{
		{Label: h.texts.GetText(KeyButtonVideo), Tag: TagVideo},
		{Label: h.texts.GetText(KeyButtonAudio), Tag: TagAudio},
	}
	if _, err := h.messenger.SendChoices(chatID, h.texts.GetText(KeyChooseFormat), choices); err != nil {
		h.logger.Printf("[USER %d] failed to send format prompt: %v", userID, err)
		return err
	}
	return nil
}
