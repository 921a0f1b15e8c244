package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/yt-liked-searcher/internal/config"
	"github.com/ytget/yt-liked-searcher/internal/library"
	"github.com/ytget/yt-liked-searcher/internal/platform"
	"github.com/ytget/yt-liked-searcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-liked-searcher"
	AppName = "YT Liked Searcher"

	WindowWidth  = 1200
	WindowHeight = 800

	envMode = "YTLS_ENV"
)

func newLogger() (*zap.Logger, error) {
	if os.Getenv(envMode) == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, config.DefaultDataDir())
	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		logger.Warn("failed to ensure export dir", zap.String("path", settings.GetExportDirectory()), zap.Error(err))
	}

	remote := library.NewYouTubeSource(settings.Options, platform.OpenURLInBrowser, logger)
	lib := library.NewFromOptions(settings.Options(), remote, logger)

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, settings, lib, version, logger)
	myApp.Lifecycle().SetOnStarted(root.Start)

	// Show and run
	myWindow.ShowAndRun()
}
