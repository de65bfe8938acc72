package bot

import "github.com/ytget/yt-downloader-bot/internal/model"

// MessageRef identifies a message the bot sent
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Choice is one inline button with its opaque callback tag
type Choice struct {
	Label string
	Tag   string
}

// Messenger is the chat-client surface the bot uses
type Messenger interface {
	SendText(chatID int64, text string) (MessageRef, error)
	SendChoices(chatID int64, text string, choices []Choice) (MessageRef, error)
	EditText(ref MessageRef, text string) error
	DeleteMessage(ref MessageRef) error
	SendVideo(chatID int64, path, caption string) error
	SendAudio(chatID int64, path, caption string) error
	AnswerCallback(callbackID, text string) error
}

// Callback tags routed back from the format prompt
const (
	CallbackPrefix = "dl_"
	TagVideo       = CallbackPrefix + "mp4"
	TagAudio       = CallbackPrefix + "mp3"
)

// KindForTag maps a callback tag to the requested kind
func KindForTag(tag string) (model.Kind, bool) {
	switch tag {
	case TagVideo:
		return model.KindVideo, true
	case TagAudio:
		return model.KindAudio, true
	default:
		return "", false
	}
}
