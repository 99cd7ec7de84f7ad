package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/spacewatch/internal/classification"
	"github.com/desertwitch/spacewatch/internal/snapshot"
)

const logsPanelHeight = 6

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the panel's title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for the panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// sectionStyle defines the style for section headers within the tree.
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAFAF"))

	// selectedStyle defines the style for the selected pool line.
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	// placeholderStyle defines the style for empty-section placeholders.
	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))

	// helpStyle defines the style for the help line.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// healthStyles maps normalized health categories onto colors.
	healthStyles = map[classification.Health]lipgloss.Style{
		classification.HealthHealthy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		classification.HealthWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")),
		classification.HealthUnhealthy: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
	}

	// unknownHealthStyle is the fallback for unknown and passthrough health.
	unknownHealthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
)

// healthStyle returns the render style for a health category.
func healthStyle(health classification.Health) lipgloss.Style {
	if style, exists := healthStyles[health]; exists {
		return style
	}

	return unknownHealthStyle
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the overlay..."
	}

	left, top := m.position()

	panel := m.renderPanel()

	return lipgloss.NewStyle().
		MarginLeft(left).
		MarginTop(top).
		Render(panel)
}

// renderPanel renders the full overlay panel at its current offset.
func (m TeaModel) renderPanel() string {
	innerWidth := defaultPanelWidth - 2 //nolint:mnd

	title := "Storage Spaces"
	if m.prefs.Pinned {
		title += " •pinned"
	}
	if m.moveMode {
		title += " •move"
	}
	if m.refreshing {
		title += " " + m.spinner.View()
	}

	sections := []string{
		titleStyle.Width(innerWidth).Render(title),
	}

	if !m.hidden {
		sections = append(sections, m.treeViewport.View())

		if m.showLogs {
			sections = append(sections, m.renderLogs(innerWidth))
		}

		sections = append(sections,
			helpStyle.Width(innerWidth).Render(m.footer()),
		)
	}

	return borderStyle.Width(innerWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// footer renders the "Last updated" stamp and the key help line. The stamp
// only advances on successful refreshes; a frozen stamp is the visible signal
// of persistent query failure.
func (m TeaModel) footer() string {
	updated := "never"
	if m.snap != nil {
		updated = m.snap.TakenAt.Format("15:04:05")
	}

	return fmt.Sprintf("Last updated %s\n", updated) +
		"enter: expand • p: pin • m: move • r: refresh • q: quit"
}

// renderTree renders the pool and disk tree into the viewport content.
func (m TeaModel) renderTree() string {
	if m.snap == nil {
		return placeholderStyle.Render("Querying storage subsystem...")
	}

	var s strings.Builder

	if len(m.snap.Pools) == 0 {
		s.WriteString(sectionStyle.Render("Pools") + "\n")
		s.WriteString(placeholderStyle.Render("  (none)") + "\n")
	}

	for i, pool := range m.snap.Pools {
		s.WriteString(m.renderPool(i, pool))
	}

	s.WriteString(sectionStyle.Render("Unpooled disks") + "\n")
	if len(m.snap.Unpooled) == 0 {
		s.WriteString(placeholderStyle.Render("  (none)") + "\n")
	}
	for _, disk := range m.snap.Unpooled {
		s.WriteString("  " + renderPhysicalDisk(disk) + "\n")
	}

	return s.String()
}

// renderPool renders one pool node with its nested disk lists.
func (m TeaModel) renderPool(index int, pool snapshot.PoolEntry) string {
	var s strings.Builder

	marker := "▸"
	if pool.Expanded {
		marker = "▾"
	}

	line := fmt.Sprintf("%s %s %s", marker, pool.Name,
		healthStyle(pool.Health).Render(string(pool.Health)))
	if index == m.selected {
		line = selectedStyle.Render("> ") + line
	} else {
		line = "  " + line
	}
	s.WriteString(line + "\n")

	if !pool.Expanded {
		return s.String()
	}

	s.WriteString(sectionStyle.Render("  Virtual disks") + "\n")
	if len(pool.VirtualDisks) == 0 {
		s.WriteString(placeholderStyle.Render("    (none)") + "\n")
	}
	for _, disk := range pool.VirtualDisks {
		s.WriteString("    " + renderVirtualDisk(disk) + "\n")
	}

	s.WriteString(sectionStyle.Render("  Physical disks") + "\n")
	if len(pool.PhysicalDisks) == 0 {
		s.WriteString(placeholderStyle.Render("    (none)") + "\n")
	}
	for _, disk := range pool.PhysicalDisks {
		s.WriteString("    " + renderPhysicalDisk(disk) + "\n")
	}

	return s.String()
}

// renderVirtualDisk renders one virtual disk line; the size segment is only
// present when the record carried a size value.
func renderVirtualDisk(disk snapshot.VirtualDiskEntry) string {
	line := fmt.Sprintf("%s %s", disk.Icon.Label(), disk.Name)
	if disk.Size != "" {
		line += " (" + disk.Size + ")"
	}

	return line + " " + healthStyle(disk.Health).Render(string(disk.Health))
}

// renderPhysicalDisk renders one physical disk line, appending notable
// operational status strings where present.
func renderPhysicalDisk(disk snapshot.PhysicalDiskEntry) string {
	line := fmt.Sprintf("%s %s %s", disk.Icon.Label(), disk.Name,
		healthStyle(disk.Health).Render(string(disk.Health)))
	if len(disk.Status) > 0 {
		line += " " + placeholderStyle.Render("("+strings.Join(disk.Status, ", ")+")")
	}

	return line
}

// renderLogs renders the toggleable log panel.
func (m TeaModel) renderLogs(width int) string {
	start := 0
	if len(m.logs) > logsPanelHeight-1 {
		start = len(m.logs) - (logsPanelHeight - 1)
	}

	content := strings.TrimSuffix(strings.Join(m.logs[start:], ""), "\n")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		sectionStyle.Width(width).Render("Logs"),
		lipgloss.NewStyle().Width(width).Render(content),
	)
}
