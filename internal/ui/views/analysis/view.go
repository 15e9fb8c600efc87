package analysis

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "huntlog/internal/modules/analytics/dto"
	huntdto "huntlog/internal/modules/hunt/dto"
	"huntlog/internal/ui/theme"
)

const allCharacters = "all"

type AnalysisPort interface {
	Analyze(ctx context.Context, input analyticsdto.AnalyzeInput) (analyticsdto.AnalyzeOutput, error)
}

type RosterPort interface {
	Characters(ctx context.Context) ([]huntdto.CharacterOutput, error)
}

type ReportLoadedMsg struct {
	Output analyticsdto.AnalyzeOutput
	Err    error
}

type RosterLoadedMsg struct {
	Names []string
	Err   error
}

// Model shows the rendered report for one character and period. Period ""
// covers every stored hunt.
type Model struct {
	port       AnalysisPort
	roster     RosterPort
	viewport   viewport.Model
	characters []string
	charIdx    int
	period     string
	err        error
	width      int
	height     int
}

func New(port AnalysisPort, roster RosterPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{
		port:       port,
		roster:     roster,
		viewport:   vp,
		characters: []string{allCharacters},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadRosterCmd(), m.Refresh())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = msg.Height - 3

	case RosterLoadedMsg:
		if msg.Err == nil {
			current := m.Character()
			m.characters = append([]string{allCharacters}, msg.Names...)
			m.charIdx = 0
			for i, name := range m.characters {
				if name == current {
					m.charIdx = i
				}
			}
		}
		return m, nil

	case ReportLoadedMsg:
		m.err = msg.Err
		if msg.Err != nil {
			m.viewport.SetContent(theme.Loss.Render(msg.Err.Error()))
		} else {
			m.viewport.SetContent(msg.Output.Text)
		}
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			cmd := m.SetPeriod("today")
			return m, cmd
		case "w":
			cmd := m.SetPeriod("week")
			return m, cmd
		case "m":
			cmd := m.SetPeriod("month")
			return m, cmd
		case "y":
			cmd := m.SetPeriod("year")
			return m, cmd
		case "a":
			cmd := m.SetPeriod("")
			return m, cmd
		case "c":
			m.charIdx = (m.charIdx + 1) % len(m.characters)
			return m, m.Refresh()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	period := m.period
	if period == "" {
		period = "all time"
	}
	header := theme.Title.Render("Analysis") + "  " +
		theme.Hot.Render(m.Character()) + theme.Muted.Render(" · "+period) + "   " +
		theme.Muted.Render("t/w/m/y: period  a: all time  c: character")
	body := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Width(m.width - 2).
		Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) Character() string {
	if m.charIdx < 0 || m.charIdx >= len(m.characters) {
		return allCharacters
	}
	return m.characters[m.charIdx]
}

func (m Model) Period() string { return m.period }

// SetPeriod switches the preset and returns the command that re-renders.
func (m *Model) SetPeriod(period string) tea.Cmd {
	m.period = period
	return m.Refresh()
}

// SetCharacter selects name when it is on the roster.
func (m *Model) SetCharacter(name string) (tea.Cmd, error) {
	for i, c := range m.characters {
		if c == name {
			m.charIdx = i
			return m.Refresh(), nil
		}
	}
	return nil, fmt.Errorf("unknown character %q", name)
}

// Refresh re-runs the analysis for the current character and period.
func (m Model) Refresh() tea.Cmd {
	input := analyticsdto.AnalyzeInput{Character: m.Character(), Period: m.period}
	return func() tea.Msg {
		out, err := m.port.Analyze(context.Background(), input)
		return ReportLoadedMsg{Output: out, Err: err}
	}
}

// ReloadRoster picks up characters added since the view was built.
func (m Model) ReloadRoster() tea.Cmd {
	return m.loadRosterCmd()
}

func (m Model) loadRosterCmd() tea.Cmd {
	return func() tea.Msg {
		chars, err := m.roster.Characters(context.Background())
		if err != nil {
			return RosterLoadedMsg{Err: err}
		}
		names := make([]string, 0, len(chars))
		for _, c := range chars {
			names = append(names, c.Name)
		}
		return RosterLoadedMsg{Names: names}
	}
}
