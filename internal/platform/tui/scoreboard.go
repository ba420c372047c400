package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memerun/internal/storage"
)

const (
	minWidthForSidebar = 100
	sidebarWidth       = 26
	maxScores          = 100
	loadTimeout        = 3 * time.Second
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(ctx context.Context, gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(ctx context.Context, gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r", "f5"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the best sessions for one game.
type ScoreboardModel struct {
	gameID      string
	title       string
	source      ScoreSource
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showSidebar bool
	quitting    bool
}

// NewScoreboardModel creates a scoreboard and loads its first page.
func NewScoreboardModel(source ScoreSource, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID:      gameID,
		title:       title,
		source:      source,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Tokens", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.source != nil {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		m.scores, m.loadErr = m.source.TopScores(ctx, m.gameID, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.source.GetGameStats(ctx, m.gameID)
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Tokens),
			fmt.Sprintf("%d", s.Hits),
			formatDuration(s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func formatDuration(d time.Duration) string {
	sec := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		titleStyle.Render("HIGH SCORES - "+m.title)))
	b.WriteString("\n\n")

	body := boxStyle.Render(m.tableContent())
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Width(sidebarWidth).Render(m.statsContent()), "  ", body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return muted.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return muted.Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsContent() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "Stats\n\nno runs yet"
	}
	s := m.stats
	return fmt.Sprintf("Stats\n\nRuns:    %d\nBest:    %d\nAverage: %.1f\nTokens:  %d\nHits:    %d\nLast:    %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.TotalTokens, s.TotalHits,
		s.LastPlayed.Format("Jan 02 15:04"))
}

// RunScoreboard shows the scoreboard full screen until the user quits.
func RunScoreboard(source ScoreSource, gameID, title string, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(source, gameID, title, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
