package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/yt-downloader-bot/internal/bot"
	"github.com/ytget/yt-downloader-bot/internal/config"
	"github.com/ytget/yt-downloader-bot/internal/download"
	"github.com/ytget/yt-downloader-bot/internal/platform"
	"github.com/ytget/yt-downloader-bot/internal/server"
	"github.com/ytget/yt-downloader-bot/internal/session"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "YT Downloader Bot"

	// UpdateTimeout is the long-polling timeout in seconds
	UpdateTimeout = 60
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	logger.Printf("%s v%s starting...", AppName, version)

	settings, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	if err := settings.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Fatalf("failed to ensure downloads dir: %v", err)
	}
	for _, tool := range []string{"yt-dlp", "ffmpeg"} {
		if !platform.ToolAvailable(tool) {
			logger.Printf("warning: %s not found in PATH", tool)
		}
	}

	api, err := tgbotapi.NewBotAPI(settings.GetBotToken())
	if err != nil {
		logger.Fatalf("failed to connect to Telegram: %v", err)
	}
	api.Debug = settings.GetBotDebug()
	logger.Printf("authorized as @%s", api.Self.UserName)

	texts := bot.NewLocalization()
	lang := settings.GetLanguage()
	if _, ok := settings.GetLanguageOptions()[lang]; !ok {
		logger.Printf("warning: unsupported language %q, falling back to English", lang)
	}
	texts.SetLanguage(lang)

	// Initialize services
	engine := download.NewYTDLPEngine(logger)
	adapter := download.NewAdapter(engine, downloadsDir, download.Tuning{
		UserAgent:      settings.GetUserAgent(),
		Headers:        settings.GetExtraHeaders(),
		CookiesFile:    settings.GetCookiesFile(),
		FFmpegLocation: settings.GetFFmpegLocation(),
		AudioQuality:   settings.GetAudioQuality(),
	}, logger)
	pool := download.NewPool(adapter, settings.GetMaxParallelDownloads())

	store := session.NewMemoryStore()
	messenger := bot.NewTelegramMessenger(api)
	intake := bot.NewIntake(store, platform.NewLinkMatcher(settings.GetLinkHosts()...), messenger, texts, logger)
	orchestrator := bot.NewOrchestrator(store, pool, messenger, texts, downloadsDir, logger)
	orchestrator.SetProgressInterval(settings.GetProgressInterval())
	dispatcher := bot.NewDispatcher(intake, orchestrator, messenger, texts, logger)

	keepAlive := server.New(settings.GetHTTPAddr(), pool, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return keepAlive.Run(gctx)
	})
	g.Go(func() error {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = UpdateTimeout
		updates := api.GetUpdatesChan(u)

		go func() {
			<-gctx.Done()
			api.StopReceivingUpdates()
		}()

		logger.Printf("polling updates with %d parallel download(s)", pool.MaxParallel())
		return dispatcher.Run(gctx, updates)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("stopped with error: %v", err)
		stop()
		os.Exit(1)
	}
	logger.Printf("%s stopped", AppName)
}
