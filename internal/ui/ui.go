// Package ui implements the overlay user interface using [tea]. The overlay
// is a movable, collapsible panel drawing the pool and disk health tree; its
// event loop is the single owner of all mutable state, including the
// preferences object and the refresh and debounce timers.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/spacewatch/internal/configuration"
	"github.com/desertwitch/spacewatch/internal/preferences"
	"github.com/desertwitch/spacewatch/internal/snapshot"
)

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	program *tea.Program

	store *preferences.Store
	prefs *preferences.Preferences

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler].
func NewHandler(ctx context.Context, cancel context.CancelFunc,
	snapshotHandler *snapshot.Handler, store *preferences.Store,
	prefs *preferences.Preferences, settings configuration.Settings,
) *Handler {
	handler := &Handler{
		store: store,
		prefs: prefs,
	}

	model := NewTeaModel(ctx, cancel, handler, snapshotHandler, store, prefs, settings)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the overlay user interface (the [tea.Program]). Any pending
// preference state is flushed after the program ends, regardless of whether
// the exit was key-driven or signal-driven, so a mutation within its debounce
// quiet period is never lost.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()
	defer uiHandler.flushPreferences()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// flushPreferences writes any pending preference state synchronously. The
// event loop has ended at this point, so the preferences object is no longer
// mutated concurrently.
func (uiHandler *Handler) flushPreferences() {
	if err := uiHandler.store.Save(uiHandler.prefs); err != nil {
		slog.Debug("Preferences save failed.", "err", err)
	}
}
