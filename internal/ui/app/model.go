package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "huntlog/internal/modules/analytics/dto"
	huntdto "huntlog/internal/modules/hunt/dto"
	"huntlog/internal/ui/components"
	"huntlog/internal/ui/theme"
	analysisview "huntlog/internal/ui/views/analysis"
	huntsview "huntlog/internal/ui/views/hunts"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type huntPort interface {
	huntsview.HuntsPort
	analysisview.RosterPort
	ImportFiles(ctx context.Context, paths []string, character, location string, allowDuplicates bool) (huntdto.ImportOutput, error)
}

type analyticsPort interface {
	Analyze(ctx context.Context, input analyticsdto.AnalyzeInput) (analyticsdto.AnalyzeOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHunts tabID = iota
	tabAnalysis
	tabCount
)

var tabLabels = [tabCount]string{"Hunts", "Analysis"}

// paletteHints must stay in sync with the switch in executePalette.
var paletteHints = []string{
	"import <file> [file...]",
	"period <today|week|month|year|all>",
	"character <name|all>",
	"reload",
}

// ─── async messages ──────────────────────────────────────────────────────────

type importedMsg struct {
	out huntdto.ImportOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Delete  key.Binding
	Export  key.Binding
	Period  key.Binding
	Cycle   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete hunt")),
		Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export hunt")),
		Period:  key.NewBinding(key.WithKeys("t", "w", "m", "y", "a"), key.WithHelp("t/w/m/y/a", "period")),
		Cycle:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next character")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Delete, k.Export},
		{k.Period, k.Cycle},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; the tabs own their data.
type Model struct {
	logDir string
	hunts  huntPort

	huntsView    huntsview.Model
	analysisView analysisview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(hunts huntPort, analytics analyticsPort, logDir string) Model {
	return Model{
		logDir:       logDir,
		hunts:        hunts,
		huntsView:    huntsview.New(hunts),
		analysisView: analysisview.New(analytics, hunts),
		activeTab:    tabHunts,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(paletteHints...),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.huntsView.Init(), m.analysisView.Init())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Keys go to the palette while it is open; async results still land.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case huntsview.HuntsLoadedMsg:
		var cmd tea.Cmd
		m.huntsView, cmd = m.huntsView.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case huntsview.ChangedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, tea.Batch(cmds...)
		}
		m.status = msg.Status
		return m, tea.Batch(append(cmds, m.refreshAll())...)

	case analysisview.ReportLoadedMsg, analysisview.RosterLoadedMsg:
		var cmd tea.Cmd
		m.analysisView, cmd = m.analysisView.Update(msg)
		return m, tea.Batch(append(cmds, cmd)...)

	case importedMsg:
		if msg.err != nil {
			m.status = "import: " + msg.err.Error()
			return m, tea.Batch(cmds...)
		}
		m.status = fmt.Sprintf("imported=%d duplicates=%d rejected=%d failed=%d",
			msg.out.Imported, msg.out.Duplicates, msg.out.Rejected, msg.out.Failed)
		return m, tea.Batch(append(cmds, m.refreshAll())...)

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabHunts && m.huntsView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case "d":
			if m.activeTab == tabHunts {
				return m, m.huntsView.DeleteSelected()
			}
		case "x":
			if m.activeTab == tabHunts {
				return m, m.huntsView.ExportSelected(m.logDir)
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHunts:
		m.huntsView, tabCmd = m.huntsView.Update(msg)
	case tabAnalysis:
		m.analysisView, tabCmd = m.analysisView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 0 {
		contentH = 0
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.FullHelpView(m.keys.FullHelp()))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHunts:
		return m.huntsView.View()
	case tabAnalysis:
		return m.analysisView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "huntlog  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		m.status = "ready"
		return m, nil
	}
	args := fields[1:]
	switch fields[0] {
	case "import":
		if len(args) == 0 {
			m.status = "usage: import <file> [file...]"
			return m, nil
		}
		m.status = fmt.Sprintf("importing %d file(s)…", len(args))
		return m, m.importCmd(args)
	case "period":
		if len(args) != 1 {
			m.status = "usage: period <today|week|month|year|all>"
			return m, nil
		}
		period := args[0]
		if period == "all" {
			period = ""
		}
		m.activeTab = tabAnalysis
		cmd := m.analysisView.SetPeriod(period)
		return m, cmd
	case "character":
		if len(args) == 0 {
			m.status = "usage: character <name|all>"
			return m, nil
		}
		cmd, err := m.analysisView.SetCharacter(strings.Join(args, " "))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.activeTab = tabAnalysis
		return m, cmd
	case "reload":
		m.status = "reloaded"
		return m, m.refreshAll()
	default:
		m.status = "unknown command: " + fields[0]
		return m, nil
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	// tab bar and status bar take two lines each
	contentH := m.height - 4
	if contentH < 0 {
		contentH = 0
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: contentH}
	m.huntsView, _ = m.huntsView.Update(size)
	m.analysisView, _ = m.analysisView.Update(size)
}

func (m Model) refreshAll() tea.Cmd {
	return tea.Batch(m.huntsView.Reload(), m.analysisView.ReloadRoster(), m.analysisView.Refresh())
}

func (m Model) importCmd(paths []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.hunts.ImportFiles(context.Background(), paths, "", "", false)
		return importedMsg{out: out, err: err}
	}
}
