package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of *tgbotapi.BotAPI the messenger needs
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramMessenger implements Messenger over the Telegram Bot API
type TelegramMessenger struct {
	api BotAPI
}

// NewTelegramMessenger wraps a Telegram client
func NewTelegramMessenger(api BotAPI) *TelegramMessenger {
	return &TelegramMessenger{api: api}
}

// SendText sends a plain text message
func (m *TelegramMessenger) SendText(chatID int64, text string) (MessageRef, error) {
	sent, err := m.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return MessageRef{}, fmt.Errorf("send message: %w", err)
	}
	return MessageRef{ChatID: chatID, MessageID: sent.MessageID}, nil
}

// SendChoices sends text with one row of inline buttons
func (m *TelegramMessenger) SendChoices(chatID int64, text string, choices []Choice) (MessageRef, error) {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(choices))
	for _, choice := range choices {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(choice.Label, choice.Tag))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))

	sent, err := m.api.Send(msg)
	if err != nil {
		return MessageRef{}, fmt.Errorf("send prompt: %w", err)
	}
	return MessageRef{ChatID: chatID, MessageID: sent.MessageID}, nil
}

// EditText replaces the text of a message and drops its inline keyboard
func (m *TelegramMessenger) EditText(ref MessageRef, text string) error {
	if _, err := m.api.Send(tgbotapi.NewEditMessageText(ref.ChatID, ref.MessageID, text)); err != nil {
		return fmt.Errorf("edit message %d: %w", ref.MessageID, err)
	}
	return nil
}

// DeleteMessage removes a message from the chat
func (m *TelegramMessenger) DeleteMessage(ref MessageRef) error {
	if _, err := m.api.Request(tgbotapi.NewDeleteMessage(ref.ChatID, ref.MessageID)); err != nil {
		return fmt.Errorf("delete message %d: %w", ref.MessageID, err)
	}
	return nil
}

// SendVideo uploads a local video file
func (m *TelegramMessenger) SendVideo(chatID int64, path, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.Caption = caption
	video.SupportsStreaming = true

	if _, err := m.api.Send(video); err != nil {
		return fmt.Errorf("upload video: %w", err)
	}
	return nil
}

// SendAudio uploads a local audio file
func (m *TelegramMessenger) SendAudio(chatID int64, path, caption string) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path))
	audio.Caption = caption

	if _, err := m.api.Send(audio); err != nil {
		return fmt.Errorf("upload audio: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges a button press; a non-empty text is shown to the user
func (m *TelegramMessenger) AnswerCallback(callbackID, text string) error {
	if _, err := m.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}
