package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hltree/internal/theme"
)

// Model is the bubbletea program cmd/hltree render's interactive viewer
// runs, mirroring the teacher's header/body/footer layout in model_view.go
// but with the list+preview panes collapsed into a single scrolling
// viewport over one highlighted file.
type Model struct {
	path     string
	theme    *theme.Theme
	viewport viewport.Model
	ready    bool
	lines    []string
}

// New builds a Model for path, pre-rendering lines (already styled via
// RenderDocument) so Update only has to resize the viewport.
func New(path string, th *theme.Theme, lines []string) Model {
	return Model{path: path, theme: th, lines: lines}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.renderHeader())
		footerHeight := lipgloss.Height(m.renderFooter())
		bodyHeight := msg.Height - headerHeight - footerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View(), m.renderFooter())
}

func (m Model) renderHeader() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Foreground)).Background(lipgloss.Color(m.theme.Background)).Padding(0, 1)
	return style.Render(fmt.Sprintf("%s  [%s]", m.path, m.theme.Name))
}

func (m Model) renderFooter() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	return style.Render("up/down/pgup/pgdn scroll  q quit")
}
