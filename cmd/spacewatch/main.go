package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/desertwitch/spacewatch/internal/configuration"
	"github.com/desertwitch/spacewatch/internal/preferences"
	"github.com/desertwitch/spacewatch/internal/snapshot"
	"github.com/desertwitch/spacewatch/internal/spaces"
	"github.com/desertwitch/spacewatch/internal/ui"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  = "dev"

	configFile  = flag.String("config", "", "path to the configuration file")
	showVersion = flag.Bool("version", false, "print the version and exit")
)

func setupLogging(w io.Writer) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// configPath resolves the configuration file location, preferring the -config
// flag over the default in the user's configuration directory.
func configPath() string {
	if configFile != nil && *configFile != "" {
		return *configFile
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "spacewatch", "spacewatch.env")
}

// preferencesPath resolves the preferences file location, preferring the
// configured override over the default in the user's configuration directory.
func preferencesPath(settings configuration.Settings) string {
	if settings.PreferencesPath != "" {
		return settings.PreferencesPath
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}

	return filepath.Join(dir, "spacewatch", "preferences.json")
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	if showVersion != nil && *showVersion {
		fmt.Printf("spacewatch version %s\n", Version)

		return
	}

	setupLogging(os.Stderr)
	setupSignalHandlers(cancel)

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	settings := configHandler.ReadSettings(configPath())

	store := preferences.NewStore(preferencesPath(settings))
	prefs := store.Load()

	spacesHandler := spaces.NewHandler(&spaces.PowerShellProvider{
		Executable: settings.PowerShell,
	})
	snapshotHandler := snapshot.NewHandler(spacesHandler)

	uiHandler := ui.NewHandler(ctx, cancel, snapshotHandler, store, prefs, settings)
	app := NewApp(uiHandler)

	// While the overlay runs, logs render inside its log panel; the
	// terminal handler is restored before any exit output.
	setupLogging(uiHandler.LogWriter)
	defer setupLogging(os.Stderr)

	if err := app.LaunchUI(); err != nil {
		setupLogging(os.Stderr)
		slog.Error("UI failure.", "err", err)
		ExitCode = 1
	}
}
