package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/platform"
	"github.com/ytget/recipe-browser/internal/search"
	"github.com/ytget/recipe-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.recipe-browser"
)

func main() {
	defaults, err := config.LoadFileDefaultsFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring config file: %v\n", err)
		defaults = &config.FileDefaults{}
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewRecipeTheme())

	settings := config.NewSettings(myApp)
	settings.ApplyDefaults(defaults)

	logger, logLevel, err := newLogger(settings, defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Recipe Browser starting",
		zap.String("version", version),
		zap.String("service_url", settings.GetServiceURL()),
	)

	windowTitle := fmt.Sprintf("%s v%s", ui.AppTitle, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	client := search.NewClient(settings.GetServiceURL(), settings.GetRequestTimeout(), logger)
	controller := search.NewController(client, logger)

	rootUI := ui.NewRootUI(myWindow, myApp, controller, logger)
	rootUI.SetSettingsChangedCallback(func(s *config.Settings) {
		logLevel.SetLevel(logging.ParseLevel(s.GetLogLevel()))
		controller.SetLookup(search.NewClient(s.GetServiceURL(), s.GetRequestTimeout(), logger))
		logger.Info("settings applied",
			zap.String("service_url", s.GetServiceURL()),
			zap.String("log_level", s.GetLogLevel()),
		)
	})

	myWindow.ShowAndRun()
}

// newLogger writes to the rotated log file unless the defaults file names
// another output
func newLogger(settings *config.Settings, defaults *config.FileDefaults) (*zap.Logger, zap.AtomicLevel, error) {
	output := defaults.LogOutput
	if output == "" {
		path, err := platform.GetLogFilePath()
		if err != nil {
			output = logging.OutputStderr
		} else {
			output = path
		}
	}

	return logging.NewWithLevel(logging.Options{
		Level:  settings.GetLogLevel(),
		Format: defaults.LogFormat,
		Output: output,
	})
}
