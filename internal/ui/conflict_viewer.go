package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConflictViewerModel pages through a file that still contains conflict
// markers so the remaining blocks can be inspected before manual work.
type ConflictViewerModel struct {
	filePath string
	content  string
	viewport viewport.Model
	ready    bool

	headerStyle   lipgloss.Style
	markerStyle   lipgloss.Style
	currentStyle  lipgloss.Style
	incomingStyle lipgloss.Style
	contextStyle  lipgloss.Style
	helpStyle     lipgloss.Style
}

func NewConflictViewerModel(filePath, content string) ConflictViewerModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle()

	return ConflictViewerModel{
		filePath: filePath,
		content:  content,
		viewport: vp,

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),

		markerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),

		currentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		incomingStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),

		contextStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

func (m ConflictViewerModel) Init() tea.Cmd {
	return nil
}

func (m ConflictViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3 // Title + help + border
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ConflictViewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.headerStyle.Render(fmt.Sprintf("Unresolved conflicts: %s", m.filePath))
	help := m.helpStyle.Render("↑/↓: scroll • q: close")

	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), help)
}

// renderContent colorizes the two sides of every conflict block: current
// side red, incoming side green, everything else dim.
func (m ConflictViewerModel) renderContent() string {
	const (
		outside = iota
		inCurrent
		inIncoming
	)

	var rendered []string
	section := outside

	for _, line := range strings.Split(m.content, "\n") {
		switch {
		case strings.HasPrefix(line, "<<<<<<< "):
			section = inCurrent
			rendered = append(rendered, m.markerStyle.Render(line))
		case line == "=======" && section == inCurrent:
			section = inIncoming
			rendered = append(rendered, m.markerStyle.Render(line))
		case strings.HasPrefix(line, ">>>>>>> "):
			section = outside
			rendered = append(rendered, m.markerStyle.Render(line))
		case section == inCurrent:
			rendered = append(rendered, m.currentStyle.Render(line))
		case section == inIncoming:
			rendered = append(rendered, m.incomingStyle.Render(line))
		default:
			rendered = append(rendered, m.contextStyle.Render(line))
		}
	}

	return strings.Join(rendered, "\n")
}

// ViewConflicts runs the viewer until the user closes it.
func ViewConflicts(filePath, content string) error {
	p := tea.NewProgram(NewConflictViewerModel(filePath, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
