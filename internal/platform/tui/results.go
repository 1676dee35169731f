package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocky/internal/registry"
	"github.com/vovakirdan/blocky/internal/storage"
)

const maxResults = 100

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.PrevTab, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next goal")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev goal")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ResultsModel shows the best stored scores for each goal kind.
type ResultsModel struct {
	goals   []registry.GoalInfo
	cursor  int
	store   *storage.Store
	entries []storage.ResultEntry
	stats   []storage.KindStats
	err     error
	table   table.Model
	help    help.Model
	keys    ResultsKeyMap
	height  int
}

// NewResultsModel creates a results board reading from store.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	m := ResultsModel{
		goals:  registry.List(),
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 8},
		{Title: "Colour", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the results of the selected goal kind.
func (m *ResultsModel) load() {
	m.entries, m.stats, m.err = nil, nil, nil
	if m.store != nil && len(m.goals) > 0 {
		m.entries, m.err = m.store.TopResults(m.goals[m.cursor].Kind, maxResults)
		if m.err == nil {
			m.stats, m.err = m.store.PlayerKindStats()
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		winner := ""
		if e.Winner {
			winner = "★"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.PlayerKind,
			e.GoalColour,
			fmt.Sprintf("%d", e.Score),
			winner,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results board.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			if len(m.goals) > 0 {
				m.cursor = (m.cursor + 1) % len(m.goals)
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			if len(m.goals) > 0 {
				m.cursor = (m.cursor + len(m.goals) - 1) % len(m.goals)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(title.Render("BLOCKY RESULTS"))
	b.WriteString("\n\n")

	tab := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(m.goals))
	for i, g := range m.goals {
		if i == m.cursor {
			tabs[i] = active.Render(g.Title)
		} else {
			tabs[i] = tab.Render(g.Title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.content()))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for _, s := range m.stats {
		b.WriteString(dim.Render(fmt.Sprintf("%-7s %4d games  %4d wins  best %4d  avg %6.1f",
			s.PlayerKind, s.Games, s.Wins, s.BestScore, s.AvgScore)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ResultsModel) content() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	switch {
	case m.store == nil:
		return empty.Render("No results database.")
	case m.err != nil:
		return empty.Render("Cannot read results: " + m.err.Error())
	case len(m.entries) == 0:
		return empty.Render("No games recorded yet.\nPlay one with 'blocky play' or 'blocky sim'.")
	}
	return m.table.View()
}

// RunResults runs the results board.
func RunResults(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewResultsModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
