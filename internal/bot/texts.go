package bot

import "fmt"

// Localization manages bot text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyStart            = "start"
	KeyChooseFormat     = "choose_format"
	KeyButtonVideo      = "button_video"
	KeyButtonAudio      = "button_audio"
	KeyExpiredLink      = "expired_link"
	KeyDownloading      = "downloading"
	KeyProgress         = "progress"
	KeySending          = "sending"
	KeyVideoCaption     = "video_caption"
	KeyAudioCaption     = "audio_caption"
	KeyErrorNotice      = "error_notice"
	KeyArtifactNotFound = "artifact_not_found"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown languages are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyStart:            "👋 Hi! I download videos and audio.\n\nJust send me a YouTube link!",
		KeyChooseFormat:     "File found. Choose a format:",
		KeyButtonVideo:      "📹 Video (MP4)",
		KeyButtonAudio:      "🎵 Audio (MP3)",
		KeyExpiredLink:      "Error: the link has expired.",
		KeyDownloading:      "⏳ Downloading %s...",
		KeyProgress:         "⏳ Downloading %s... %d%% · %s · ETA %s",
		KeySending:          "🚀 Sending to Telegram...",
		KeyVideoCaption:     "Your video is ready!",
		KeyAudioCaption:     "Your audio is ready!",
		KeyErrorNotice:      "❌ Error:\n%s",
		KeyArtifactNotFound: "File not found after download.",
	}

	l.texts["ru"] = map[string]string{
		KeyStart:            "👋 Привет! Я загружаю видео и аудио.\n\nПросто пришли мне ссылку на YouTube!",
		KeyChooseFormat:     "Файл обнаружен. Выберите формат:",
		KeyButtonVideo:      "📹 Видео (MP4)",
		KeyButtonAudio:      "🎵 Аудио (MP3)",
		KeyExpiredLink:      "Ошибка: ссылка устарела.",
		KeyDownloading:      "⏳ Загрузка %s...",
		KeyProgress:         "⏳ Загрузка %s... %d%% · %s · осталось %s",
		KeySending:          "🚀 Отправка в Telegram...",
		KeyVideoCaption:     "Ваше видео готово!",
		KeyAudioCaption:     "Ваше аудио готово!",
		KeyErrorNotice:      "❌ Ошибка:\n%s",
		KeyArtifactNotFound: "Файл не найден после скачивания.",
	}
}
