package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader-bot/internal/platform"
)

// Settings keys (also the environment variable names)
const (
	KeyBotToken         = "BOT_TOKEN"
	KeyBotDebug         = "BOT_DEBUG"
	KeyDownloadDir      = "DOWNLOAD_DIR"
	KeyMaxParallel      = "MAX_PARALLEL_DOWNLOADS"
	KeyLanguage         = "LANGUAGE"
	KeyHTTPAddr         = "HTTP_ADDR"
	KeyPort             = "PORT"
	KeyFFmpegLocation   = "FFMPEG_LOCATION"
	KeyCookiesFile      = "COOKIES_FILE"
	KeyUserAgent        = "USER_AGENT"
	KeyExtraHeaders     = "EXTRA_HEADERS"
	KeyAudioQuality     = "AUDIO_QUALITY"
	KeyProgressInterval = "PROGRESS_INTERVAL"
	KeyLinkHosts        = "LINK_HOSTS"
	KeyConfigFile       = "CONFIG_FILE"
)

// Default values
const (
	DefaultDownloadDir      = "downloads"
	DefaultMaxParallel      = 2
	DefaultLanguage         = "ru"
	DefaultHTTPAddr         = ":8080"
	DefaultAudioQuality     = "192K"
	DefaultProgressInterval = 3 * time.Second
)

// Settings manages application configuration
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a new settings manager over v
func NewSettings(v *viper.Viper) *Settings {
	return &Settings{v: v}
}

// Load reads .env (if present), the process environment and the optional
// YAML file named by CONFIG_FILE
func Load() (*Settings, error) {
	// A missing .env is fine, variables may be set directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return NewSettings(v), nil
}

// Validate checks the settings the process cannot start without
func (s *Settings) Validate() error {
	if s.GetBotToken() == "" {
		return fmt.Errorf("%s is not set", KeyBotToken)
	}
	return nil
}

// GetBotToken returns the bot authentication token
func (s *Settings) GetBotToken() string {
	return strings.TrimSpace(s.v.GetString(KeyBotToken))
}

// GetBotDebug returns whether the chat client logs raw API traffic
func (s *Settings) GetBotDebug() bool {
	return s.v.GetBool(KeyBotDebug)
}

// GetDownloadDirectory returns the shared download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.v.GetString(KeyDownloadDir)
	if dir == "" {
		s.SetDownloadDirectory(DefaultDownloadDir)
		return DefaultDownloadDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.v.Set(KeyDownloadDir, dir)
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.v.GetInt(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	if value > 10 {
		return 10
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}
	s.v.Set(KeyMaxParallel, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.v.GetString(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the bot language
func (s *Settings) SetLanguage(lang string) {
	s.v.Set(KeyLanguage, lang)
}

// GetHTTPAddr returns the keep-alive listen address; PORT wins over the default
func (s *Settings) GetHTTPAddr() string {
	if addr := s.v.GetString(KeyHTTPAddr); addr != "" {
		return addr
	}
	if port := s.v.GetString(KeyPort); port != "" {
		return ":" + port
	}
	return DefaultHTTPAddr
}

// GetFFmpegLocation returns the ffmpeg override, falling back to a bundled
// ffmpeg next to the executable
func (s *Settings) GetFFmpegLocation() string {
	if location := s.v.GetString(KeyFFmpegLocation); location != "" {
		return location
	}
	return platform.ExecutableDirWith("ffmpeg")
}

// GetCookiesFile returns the cookies file, or "" if unset or missing on disk
func (s *Settings) GetCookiesFile() string {
	file := s.v.GetString(KeyCookiesFile)
	if file == "" {
		return ""
	}
	if _, err := os.Stat(file); err != nil {
		return ""
	}
	return file
}

// GetUserAgent returns the user agent override
func (s *Settings) GetUserAgent() string {
	return s.v.GetString(KeyUserAgent)
}

// GetExtraHeaders returns the "Key:Value" header overrides
func (s *Settings) GetExtraHeaders() []string {
	return splitList(s.v.GetString(KeyExtraHeaders), func(item string) bool {
		return strings.Contains(item, ":")
	})
}

// GetAudioQuality returns the mp3 target bitrate
func (s *Settings) GetAudioQuality() string {
	quality := s.v.GetString(KeyAudioQuality)
	if quality == "" {
		return DefaultAudioQuality
	}
	return quality
}

// GetProgressInterval returns the minimum interval between status edits; 0 disables them
func (s *Settings) GetProgressInterval() time.Duration {
	if !s.v.IsSet(KeyProgressInterval) {
		return DefaultProgressInterval
	}
	interval := s.v.GetDuration(KeyProgressInterval)
	if interval < 0 {
		return 0
	}
	return interval
}

// GetLinkHosts returns the recognized video hostnames; empty means the defaults
func (s *Settings) GetLinkHosts() []string {
	return splitList(s.v.GetString(KeyLinkHosts), nil)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// splitList splits a comma separated value, dropping blanks and rejected items
func splitList(raw string, keep func(string) bool) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if keep != nil && !keep(item) {
			continue
		}
		items = append(items, item)
	}
	return items
}
