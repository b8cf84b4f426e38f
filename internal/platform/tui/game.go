package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Brilu-22/tunetiles/internal/audio"
	"github.com/Brilu-22/tunetiles/internal/puzzle"
	"github.com/Brilu-22/tunetiles/internal/session"
)

// GameModel is the Bubble Tea model for one puzzle session.
type GameModel struct {
	opts       session.Options
	controller *session.Controller
	jukebox    *audio.Player

	keys   GameKeyMap
	help   help.Model
	name   textinput.Model
	scores table.Model

	cursor puzzle.Position
	width  int
	height int

	nameArmed bool // name field focused and prefilled for this ending
	skipped   bool // player skipped the submission
	quitting  bool
}

// NewGameModel creates a model and starts a session.
func NewGameModel(opts session.Options, jukebox *audio.Player) GameModel {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 20
	name.Width = 24

	h := help.New()
	h.ShowAll = false

	return GameModel{
		opts:       opts,
		controller: session.New(opts),
		jukebox:    jukebox,
		keys:       DefaultGameKeyMap(),
		help:       h,
		name:       name,
		scores:     newScoreTable(),
	}
}

// Init starts the session clock.
func (m GameModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// One tick stream runs for the life of the program. Ended
		// sessions ignore it; the end screens use it to pick up the
		// background leaderboard load.
		m.controller.Tick()
		next, cmd := m.sync(m.controller.Snapshot())
		return next, tea.Batch(cmd, tickCmd())
	}

	// Remaining messages (cursor blink) belong to the name field.
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey routes keyboard input to the active screen.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.controller.Snapshot()

	// The name field swallows everything except submit, skip and quit.
	if m.nameEntryActive(snap) {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.controller.SubmitName(m.name.Value()) {
				m.refreshScores(m.controller.Snapshot())
			}
			return m, nil
		case "esc":
			m.skipped = true
			m.refreshScores(snap)
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Music):
		m.jukebox.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.jukebox.Next()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.jukebox.Prev()
		return m, nil
	}

	switch snap.State {
	case session.StateTrivia:
		if key.Matches(msg, m.keys.Answer) {
			m.controller.AnswerTrivia(int(msg.String()[0] - '1'))
		}
		return m, nil

	case session.StateRunning, session.StateOverride:
		return m.handleBoardKey(msg)

	default:
		return m.handleEndKey(msg, snap)
	}
}

// handleBoardKey moves the cursor and taps tiles.
func (m GameModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := m.cursor.Row(), m.cursor.Col()

	switch {
	case key.Matches(msg, m.keys.Up):
		if row > 0 {
			row--
		}
	case key.Matches(msg, m.keys.Down):
		if row < puzzle.Size-1 {
			row++
		}
	case key.Matches(msg, m.keys.Left):
		if col > 0 {
			col--
		}
	case key.Matches(msg, m.keys.Right):
		if col < puzzle.Size-1 {
			col++
		}
	case key.Matches(msg, m.keys.Tap):
		m.controller.TapTile(m.cursor)
		next, cmd := m.sync(m.controller.Snapshot())
		return next, cmd
	}

	m.cursor = puzzle.PositionAt(row, col)
	return m, nil
}

// handleEndKey serves the completion and leaderboard screens.
func (m GameModel) handleEndKey(msg tea.KeyMsg, snap session.Snapshot) (tea.Model, tea.Cmd) {
	if snap.Special && !snap.Acked {
		if key.Matches(msg, m.keys.Tap) {
			m.controller.AcknowledgeCompletion()
			next, cmd := m.sync(m.controller.Snapshot())
			return next, cmd
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.New) {
		return m.restart()
	}
	return m, nil
}

// sync refreshes the end-of-session screens: the leaderboard rows
// follow the snapshot and the name field is armed once per ending.
func (m GameModel) sync(snap session.Snapshot) (GameModel, tea.Cmd) {
	if !snap.State.Ended() {
		return m, nil
	}
	m.refreshScores(snap)
	if m.nameEntryActive(snap) && !m.nameArmed {
		m.nameArmed = true
		m.name.SetValue(snap.NamePrefill)
		m.name.CursorEnd()
		return m, m.name.Focus()
	}
	return m, nil
}

// nameEntryActive reports whether the ended session is waiting for a
// leaderboard name.
func (m GameModel) nameEntryActive(snap session.Snapshot) bool {
	if !snap.State.Ended() || snap.Submitted || m.skipped {
		return false
	}
	if snap.Special && !snap.Acked {
		return false
	}
	return true
}

// restart closes the finished session and starts a fresh one with a new
// seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.controller.Close()

	opts := m.opts
	opts.Seed = time.Now().UnixNano()
	opts.Name = m.name.Value()
	m.controller = session.New(opts)

	m.cursor = 0
	m.skipped = false
	m.nameArmed = false
	m.name.Blur()
	m.name.SetValue("")
	m.scores.SetRows(nil)

	// The running tick stream carries over to the new session.
	return m, nil
}

// refreshScores rebuilds the leaderboard table rows.
func (m *GameModel) refreshScores(snap session.Snapshot) {
	m.scores.SetRows(scoreRows(snap.Leaderboard))
}

// View renders the active screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.controller.Snapshot()
	switch {
	case snap.State == session.StateTrivia:
		return m.viewTrivia(snap)
	case snap.State.Ended():
		if snap.Special && !snap.Acked {
			return m.viewEQMaster(snap)
		}
		if m.nameEntryActive(snap) {
			return m.viewNameEntry(snap)
		}
		return m.viewLeaderboard(snap)
	default:
		return m.viewBoard(snap)
	}
}

// Run starts the Bubble Tea program for one session and blocks until
// the player quits.
func Run(opts session.Options, jukebox *audio.Player) error {
	model := NewGameModel(opts, jukebox)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(GameModel); ok {
		m.controller.Close()
	}
	return err
}
