package hunts

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	huntdto "huntlog/internal/modules/hunt/dto"
	"huntlog/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HuntsPort interface {
	List(ctx context.Context, filter huntdto.FilterInput) ([]huntdto.HuntOutput, error)
	Delete(ctx context.Context, ids []int64) (int, error)
	Export(ctx context.Context, ids []int64, dir string) (huntdto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type HuntsLoadedMsg struct {
	Hunts []huntdto.HuntOutput
	Err   error
}

// ChangedMsg reports the outcome of a delete or export so the app can show it.
type ChangedMsg struct {
	Status string
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type huntItem struct {
	hunt huntdto.HuntOutput
}

func (i huntItem) Title() string {
	return fmt.Sprintf("#%d %s %s", i.hunt.ID, orDash(i.hunt.Date), orDash(i.hunt.StartTime))
}

func (i huntItem) Description() string {
	return fmt.Sprintf("%s @ %s  %dmin  balance %d", i.hunt.Character, i.hunt.Location, i.hunt.DurationMin, i.hunt.Balance)
}

func (i huntItem) FilterValue() string {
	return i.hunt.Character + " " + i.hunt.Location + " " + i.hunt.Date
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    HuntsPort
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port HuntsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Hunts"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case HuntsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Hunts: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Hunts"
		items := make([]list.Item, len(msg.Hunts))
		for i, h := range msg.Hunts {
			items[i] = huntItem{hunt: h}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.showSelected()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.showSelected()
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading hunts…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is active, so the app
// does not treat typed letters as shortcuts.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted hunt, if any.
func (m Model) Selected() (huntdto.HuntOutput, bool) {
	if item, ok := m.list.SelectedItem().(huntItem); ok {
		return item.hunt, true
	}
	return huntdto.HuntOutput{}, false
}

// Reload fetches every stored hunt, newest first.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		hunts, err := m.port.List(context.Background(), huntdto.FilterInput{})
		return HuntsLoadedMsg{Hunts: hunts, Err: err}
	}
}

// DeleteSelected removes the highlighted hunt and its kills.
func (m Model) DeleteSelected() tea.Cmd {
	h, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if _, err := m.port.Delete(context.Background(), []int64{h.ID}); err != nil {
			return ChangedMsg{Err: fmt.Errorf("delete hunt %d: %w", h.ID, err)}
		}
		return ChangedMsg{Status: fmt.Sprintf("deleted hunt %d", h.ID)}
	}
}

// ExportSelected writes the highlighted hunt's original text into dir.
func (m Model) ExportSelected(dir string) tea.Cmd {
	h, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		if strings.TrimSpace(dir) == "" {
			return ChangedMsg{Err: fmt.Errorf("export needs log_dir (huntlog config set-log-dir)")}
		}
		out, err := m.port.Export(context.Background(), []int64{h.ID}, dir)
		if err != nil {
			return ChangedMsg{Err: fmt.Errorf("export hunt %d: %w", h.ID, err)}
		}
		return ChangedMsg{Status: "exported " + strings.Join(out.Paths, ", ")}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m *Model) showSelected() {
	h, ok := m.Selected()
	if !ok {
		m.preview.SetContent(theme.Muted.Render("No hunts stored yet"))
		return
	}
	m.preview.SetContent(renderDetail(h))
	m.preview.GotoTop()
}

func renderDetail(h huntdto.HuntOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Hunt #%d", h.ID)) + "\n\n")
	row := func(label, value string) {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-10s", label)) + value + "\n")
	}
	row("character", h.Character)
	row("location", h.Location)
	row("from", orDash(h.Date)+" "+orDash(h.StartTime))
	row("to", orDash(h.EndTime))
	row("duration", fmt.Sprintf("%d min", h.DurationMin))
	row("raw xp", fmt.Sprint(h.RawXP))
	row("xp", fmt.Sprint(h.XP))
	row("loot", fmt.Sprint(h.Loot))
	row("supplies", fmt.Sprint(h.Supplies))
	row("balance", theme.Signed(h.Balance))
	row("payment", fmt.Sprint(h.Payment))
	row("damage", fmt.Sprint(h.Damage))
	row("healing", fmt.Sprint(h.Healing))
	if len(h.Monsters) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Killed") + "\n")
		for _, mon := range h.Monsters {
			sb.WriteString(fmt.Sprintf("  %d x %s\n", mon.Count, mon.Name))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("d: delete  x: export to log dir  /: filter"))
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
