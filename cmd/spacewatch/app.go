package main

import (
	"fmt"

	"github.com/desertwitch/spacewatch/internal/ui"
)

// App bundles the wired application handlers.
type App struct {
	uiHandler *ui.Handler
}

// NewApp returns a pointer to a new [App].
func NewApp(uiHandler *ui.Handler) *App {
	return &App{
		uiHandler: uiHandler,
	}
}

// LaunchUI runs the overlay user interface until exit.
func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}
