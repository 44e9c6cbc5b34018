// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/model"
	statsPkg "github.com/verte-zerg/tuidle/internal/stats"
)

// Recorder receives the finished game exactly once.
type Recorder func(rec model.GameRecord) error

// Options configure a game model.
type Options struct {
	// Puzzle is the daily number shown in the footer and stored with the game.
	Puzzle   int
	Recorder Recorder
	// History holds earlier games for the footer summary.
	History []model.GameAggregate
}

// Model implements the Bubble Tea game UI.
type Model struct {
	session  *game.Session
	opts     Options
	help     help.Model
	summary  statsPkg.Summary
	hasStats bool

	width  int
	height int

	startedAt time.Time
	recorded  bool
}

// NewModel constructs a game model over an in-progress session.
func NewModel(session *game.Session, opts Options) *Model {
	m := &Model{
		session:   session,
		opts:      opts,
		help:      help.New(),
		startedAt: time.Now(),
	}
	if len(opts.History) > 0 {
		m.summary = statsPkg.Summarize(opts.History)
		m.hasStats = true
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.IsOver() || key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, keys.Delete):
		m.session.HandleInput(game.Delete())
	case key.Matches(msg, keys.Submit):
		m.session.HandleInput(game.Submit())
		if m.session.IsOver() {
			m.finish()
		}
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			m.session.HandleInput(game.Char(r))
		}
	}
	return m, nil
}

func (m *Model) finish() {
	if m.recorded {
		return
	}
	m.recorded = true
	rec := m.session.Record(m.opts.Puzzle, m.startedAt, time.Now())
	log.Info().
		Str("mode", rec.Mode).
		Int("puzzle", rec.PuzzleNumber).
		Bool("won", rec.Won).
		Int("guesses", len(rec.Guesses)).
		Msg("game finished")

	m.opts.History = append(m.opts.History, model.GameAggregate{
		EndedAt:      rec.EndedAt,
		Mode:         rec.Mode,
		PuzzleNumber: rec.PuzzleNumber,
		Target:       rec.Target,
		Won:          rec.Won,
		GuessCount:   len(rec.Guesses),
	})
	m.summary = statsPkg.Summarize(m.opts.History)
	m.hasStats = true

	if m.opts.Recorder == nil {
		return
	}
	if err := m.opts.Recorder(rec); err != nil {
		log.Error().Err(err).Msg("failed to record game")
	}
}

// Session returns the session driven by the model.
func (m *Model) Session() *game.Session {
	return m.session
}

// View implements tea.Model.
func (m *Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		renderHeader(),
		"",
		renderBoard(m.session),
		"",
		renderKeyboard(m.session),
		"",
		renderMessage(m.session),
	)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	footerHeight := lipgloss.Height(footer)
	body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, footerHeight, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if m.session.Mode() == game.ModeWordle {
		segments = append(segments, fmt.Sprintf("Puzzle %d", m.opts.Puzzle))
	} else {
		segments = append(segments, "Random word")
	}
	segments = append(segments, fmt.Sprintf("Guess %d/%d", min(len(m.session.History())+1, game.MaxGuesses), game.MaxGuesses))
	if m.hasStats {
		segments = append(segments, fmt.Sprintf("Played %d · Win %.0f%% · Streak %d",
			m.summary.Played, m.summary.WinRate*100, m.summary.CurrentStreak))
	}
	status := footerStyle.Render(strings.Join(segments, "  "))
	if m.session.IsOver() {
		return status + "\n" + footerStyle.Render("press any key to exit")
	}
	return status + "\n" + m.help.View(keys)
}
