// Package tui is a scrollable terminal viewer for one alignment.
//
// It follows The Elm Architecture via bubbletea: the Model keeps the
// alignment and a bubbles viewport; window-size messages re-wrap the text
// to the terminal width, key messages scroll or quit.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/highroad/align"
	"github.com/katalvlaran/highroad/render"
	"github.com/katalvlaran/highroad/scoring"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Model is the bubbletea model of the viewer.
type Model struct {
	res      align.Result
	policy   scoring.Policy
	renderer *render.Renderer

	viewport viewport.Model
	ready    bool
	quitting bool
}

// New builds a viewer for res. r controls colour and ruler; its width is
// replaced by the terminal width on every resize.
func New(res align.Result, policy scoring.Policy, r *render.Renderer) Model {
	if r == nil {
		r = render.New()
	}
	return Model{res: res, policy: policy, renderer: r}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.renderer.Wrapped(msg.Width).Render(m.res.Alignment))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}
	return strings.Join([]string{m.header(), m.viewport.View(), m.footer()}, "\n")
}

func (m Model) header() string {
	st := m.res.Stats()
	title := titleStyle.Render(fmt.Sprintf("score %d  end %d", m.res.Score, m.res.End))
	info := infoStyle.Render(fmt.Sprintf("%s  identity %.1f%%  gaps %d  blanks %d",
		m.policy, 100*st.Identity(), st.Gaps, st.Blanks))
	return lipgloss.JoinVertical(lipgloss.Left, title, info)
}

func (m Model) footer() string {
	pct := 100.0
	if m.ready {
		pct = 100 * m.viewport.ScrollPercent()
	}
	return footerStyle.Render(fmt.Sprintf("↑/↓ scroll  q quit  %3.0f%%", pct))
}
