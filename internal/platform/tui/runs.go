package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

// Run table layout.
const (
	maxRuns       = 100 // Max runs to load
	tableChrome   = 10  // Rows used by title, stats, borders and help
	minTableRows  = 3
	dateColumnMax = 20
)

// RunsKeyMap holds the run browser bindings.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Sort   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Sort, k.Quit},
	}
}

// DefaultRunsKeyMap uses vim keys next to the arrows; s flips the sort.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Sort: key.NewBinding(
			key.WithKeys("tab", "s"),
			key.WithHelp("tab", "biggest/newest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	store    *storage.Store
	runs     []storage.RunRecord
	stats    *storage.Stats
	newest   bool // Sorted by date instead of size
	err      error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel loads the history and builds the table.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	m := RunsModel{
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Size", Width: 6},
		{Title: "Outcome", Width: 10},
		{Title: "Eaten", Width: 6},
		{Title: "Hits", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	// Give the date column whatever width is left
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > columns[6].Width {
		columns[6].Width = min(spare, dateColumnMax)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableChrome, minTableRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads runs and stats from the store.
func (m *RunsModel) loadRuns() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.newest {
		m.runs, m.err = m.store.AllRuns()
		if len(m.runs) > maxRuns {
			m.runs = m.runs[:maxRuns]
		}
	} else {
		m.runs, m.err = m.store.TopRuns(maxRuns)
	}
	if m.err == nil {
		m.stats, m.err = m.store.Stats()
	}
	m.updateTableRows()
}

// updateTableRows fills the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.FinalSize),
			outcomeLabel(r.Outcome),
			fmt.Sprintf("%d", r.Eaten),
			fmt.Sprintf("%d", r.Hits),
			formatDuration(r.Duration.Milliseconds()),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeRestart:
		return "omega"
	case storage.OutcomeGameOver:
		return "eaten"
	default:
		return outcome
	}
}

// formatDuration renders milliseconds as m:ss.
func formatDuration(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init implements tea.Model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, sorting and resizes.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Sort):
			m.newest = !m.newest
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View draws the title, stats line, table and help.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "DRAGON RUNS - BIGGEST"
	if m.newest {
		title = "DRAGON RUNS - NEWEST"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the whole history.
func (m RunsModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs · %d omega · best %d · avg %.0f · %d eaten",
		m.stats.Runs, m.stats.Wins, m.stats.BestSize, m.stats.AvgSize, m.stats.TotalEaten)
}

// renderTableContent renders the table or an explanatory message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot read run history:\n" + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nGo eat some dragons!")
	}
	return m.table.View()
}

// centerText pads text so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// BrowseRuns shows the run browser until the user quits.
func BrowseRuns(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
