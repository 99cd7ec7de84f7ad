package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/spacewatch/internal/configuration"
	"github.com/desertwitch/spacewatch/internal/preferences"
	"github.com/desertwitch/spacewatch/internal/snapshot"
)

const (
	logsMax = 100

	moveStep = 1

	defaultPanelWidth  = 46
	defaultPanelHeight = 20
)

// tickMsg is a [tea.Msg] signaling a scheduled refresh tick.
type tickMsg time.Time

// snapshotMsg is a [tea.Msg] carrying a freshly built [snapshot.Snapshot].
type snapshotMsg struct {
	snap *snapshot.Snapshot
}

// saveTickMsg is a [tea.Msg] signaling an elapsed preference-write debounce
// delay; it carries the mutation sequence it was scheduled for.
type saveTickMsg int

// TeaModel is the principal [tea.Model] for the overlay user interface.
type TeaModel struct {
	width  int
	height int

	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc

	uiHandler       *Handler
	snapshotHandler *snapshot.Handler
	store           *preferences.Store
	prefs           *preferences.Preferences
	settings        configuration.Settings

	snap       *snapshot.Snapshot
	refreshing bool

	selected int
	hidden   bool
	moveMode bool
	showLogs bool

	// saveSeq is bumped on every preference mutation; only the debounce
	// message carrying the current sequence triggers a write.
	saveSeq int

	spinner      spinner.Model
	treeViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
func NewTeaModel(ctx context.Context, cancel context.CancelFunc, uiHandler *Handler,
	snapshotHandler *snapshot.Handler, store *preferences.Store,
	prefs *preferences.Preferences, settings configuration.Settings,
) TeaModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	treeViewport := viewport.New(defaultPanelWidth, defaultPanelHeight)

	return TeaModel{
		ctx:             ctx,
		cancel:          cancel,
		uiHandler:       uiHandler,
		snapshotHandler: snapshotHandler,
		store:           store,
		prefs:           prefs,
		settings:        settings,
		spinner:         spin,
		treeViewport:    treeViewport,
		logs:            make([]string, 0, logsMax),

		// Init dispatches the first refresh, so it counts as in flight
		// from construction; ticks landing before it completes are dropped
		// like during any other refresh.
		refreshing: true,
	}
}

// Init initializes the model within a [tea.Program], dispatching the first
// refresh (tracked as in flight since construction) and scheduling the
// polling tick.
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		m.refresh(),
		scheduleTick(m.settings.Interval),
	)
}

// scheduleTick produces a [tea.Cmd] that delivers the next refresh tick.
func scheduleTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh produces a [tea.Cmd] that queries the storage subsystem and builds
// a new snapshot. The expand states are copied at dispatch, so the build
// works on an immutable view of the preferences.
func (m TeaModel) refresh() tea.Cmd {
	ctx := m.ctx
	handler := m.snapshotHandler

	expanded := make(map[string]bool, len(m.prefs.PoolExpanded))
	for objectID, state := range m.prefs.PoolExpanded {
		expanded[objectID] = state
	}

	return func() tea.Msg {
		return snapshotMsg{snap: handler.Build(ctx, expanded)}
	}
}

// scheduleSave bumps the mutation sequence and produces a [tea.Cmd] that
// delivers the debounce message for it. Any further mutation before the delay
// elapses supersedes the scheduled write.
func (m *TeaModel) scheduleSave() tea.Cmd {
	m.saveSeq++
	seq := m.saveSeq

	return tea.Tick(m.settings.Debounce, func(time.Time) tea.Msg {
		return saveTickMsg(seq)
	})
}

// flushSave writes any pending preference state synchronously. Failures are
// swallowed after a debug log; a later save eventually reconciles state.
func (m *TeaModel) flushSave() {
	if err := m.store.Save(m.prefs); err != nil {
		slog.Debug("Preferences save failed.", "err", err)
	}
}

// Update is the principal message handling method of the model. It sets the
// internal state of the model, for later rendering.
//
//nolint:funlen,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// A resize can force the overlay back into bounds; a changed
		// position persists like any other preference mutation.
		if m.clampPosition() {
			cmds = append(cmds, m.scheduleSave())
		}
		m.resizeViewport()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case tickMsg:
		// A tick arriving mid-refresh is dropped; the running refresh
		// always completes first.
		if !m.refreshing {
			m.refreshing = true
			cmds = append(cmds, m.refresh())
		}

		cmds = append(cmds, scheduleTick(m.settings.Interval))

	case snapshotMsg:
		m.refreshing = false
		m.snap = msg.snap
		m.clampSelection()
		m.treeViewport.SetContent(m.renderTree())

	case saveTickMsg:
		if int(msg) == m.saveSeq {
			m.flushSave()
		}

	case LogMsg:
		if len(m.logs) >= logsMax {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, string(msg))

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.treeViewport, cmd = m.treeViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey processes one key press.
//
//nolint:funlen,ireturn
func (m TeaModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.moveMode {
		if model, cmd, handled := m.handleMoveKey(msg); handled {
			return model, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.flushSave()
		m.cancel()

		return m, tea.Quit

	case "r":
		if !m.refreshing {
			m.refreshing = true
			cmds = append(cmds, m.refresh())
		}

	case "p":
		m.prefs.Pinned = !m.prefs.Pinned
		cmds = append(cmds, m.scheduleSave())

	case "h":
		// Pinned overlays cannot be hidden.
		if !m.prefs.Pinned {
			m.hidden = !m.hidden
		}

	case "m":
		m.moveMode = !m.moveMode

	case "l":
		m.showLogs = !m.showLogs
		m.resizeViewport()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.treeViewport.SetContent(m.renderTree())
		}

	case "down", "j":
		if m.snap != nil && m.selected < len(m.snap.Pools)-1 {
			m.selected++
			m.treeViewport.SetContent(m.renderTree())
		}

	case "enter", " ":
		if cmd := m.toggleSelectedPool(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleMoveKey processes one key press while in move mode, repositioning the
// overlay. Position mutations feed the debounce timer like any other
// preference change.
//
//nolint:ireturn
func (m TeaModel) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	left, top, _ := m.prefs.Position()

	switch msg.String() {
	case "left":
		left -= moveStep
	case "right":
		left += moveStep
	case "up":
		top -= moveStep
	case "down":
		top += moveStep
	case "esc", "m":
		m.moveMode = false

		return m, nil, true
	default:
		return m, nil, false
	}

	m.prefs.SetPosition(left, top)
	m.clampPosition()

	return m, m.scheduleSave(), true
}

// toggleSelectedPool flips the expand state of the selected pool, both in the
// persisted preferences and in the on-screen snapshot.
func (m *TeaModel) toggleSelectedPool() tea.Cmd {
	if m.snap == nil || m.selected >= len(m.snap.Pools) {
		return nil
	}

	entry := &m.snap.Pools[m.selected]
	entry.Expanded = !entry.Expanded
	m.prefs.SetPoolExpanded(entry.ObjectID, entry.Expanded)
	m.treeViewport.SetContent(m.renderTree())

	return m.scheduleSave()
}

// clampSelection keeps the pool selection within the current snapshot.
func (m *TeaModel) clampSelection() {
	if m.snap == nil || len(m.snap.Pools) == 0 {
		m.selected = 0

		return
	}
	if m.selected >= len(m.snap.Pools) {
		m.selected = len(m.snap.Pools) - 1
	}
}

// clampPosition keeps the overlay offset within the terminal bounds. It
// reports whether the clamp actually moved the overlay.
func (m *TeaModel) clampPosition() bool {
	left, top, ok := m.prefs.Position()
	if !ok {
		return false
	}

	origLeft, origTop := left, top

	maxLeft := float64(m.width - defaultPanelWidth)
	maxTop := float64(m.height - 3) //nolint:mnd

	if maxLeft > 0 && left > maxLeft {
		left = maxLeft
	}
	if maxTop > 0 && top > maxTop {
		top = maxTop
	}
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}

	if left == origLeft && top == origTop {
		return false
	}

	m.prefs.SetPosition(left, top)

	return true
}

// resizeViewport fits the tree viewport into the available panel height.
func (m *TeaModel) resizeViewport() {
	height := m.height - 6 //nolint:mnd
	if m.showLogs {
		height -= logsPanelHeight
	}
	if height < 3 {
		height = 3
	}

	m.treeViewport.Width = defaultPanelWidth - 2 //nolint:mnd
	m.treeViewport.Height = height
}

// position returns the overlay offset in cells, using the platform default
// placement when none is persisted.
func (m TeaModel) position() (int, int) {
	left, top, ok := m.prefs.Position()
	if !ok {
		return 2, 1 //nolint:mnd
	}

	return int(left), int(top)
}
