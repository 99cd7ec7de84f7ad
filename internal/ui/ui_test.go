package ui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/spacewatch/internal/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quitModel is a minimal [tea.Model] that quits immediately, standing in for
// a program ending without passing through the key handling.
type quitModel struct{}

func (quitModel) Init() tea.Cmd                       { return tea.Quit }
func (quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return quitModel{}, nil }
func (quitModel) View() string                        { return "" }

// TestHandler_Launch_FlushesPreferences verifies that pending preference
// state is written once the program ends, even when the exit never passed
// through the quit key handling (as with a signal-driven shutdown).
func TestHandler_Launch_FlushesPreferences(t *testing.T) {
	t.Parallel()

	store := preferences.NewStore(filepath.Join(t.TempDir(), "preferences.json"))
	prefs := preferences.Default()
	prefs.Pinned = true
	prefs.SetPoolExpanded("p1", false)

	handler := &Handler{
		program: tea.NewProgram(quitModel{},
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
		),
		store: store,
		prefs: prefs,
	}
	handler.LogWriter = NewTeaLogWriter(handler.program)

	require.NoError(t, handler.Launch())

	loaded := preferences.NewStore(store.Path()).Load()
	assert.True(t, loaded.Pinned)
	assert.False(t, loaded.PoolIsExpanded("p1"), "pending state should be flushed at shutdown")
}
