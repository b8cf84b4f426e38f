package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Brilu-22/tunetiles/internal/leaderboard"
	"github.com/Brilu-22/tunetiles/internal/puzzle"
	"github.com/Brilu-22/tunetiles/internal/session"
)

// viewBoard renders the puzzle grid with the HUD, used for the running
// state and the override window.
func (m GameModel) viewBoard(snap session.Snapshot) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T U N E T I L E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderHUD(snap), m.width))
	b.WriteString("\n\n")

	boardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	board := boardStyle.Render(m.renderGrid(snap))
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if snap.State == session.StateOverride {
		banner := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

		text := fmt.Sprintf("STOP - god mode: swap any two tiles (%ds)", snap.OverrideLeft)
		if snap.Selection != session.NoSelection {
			text = fmt.Sprintf("STOP - god mode: pick a tile to swap with %d (%ds)",
				snap.Board.At(snap.Selection), snap.OverrideLeft)
		}
		b.WriteString("\n")
		b.WriteString(centerText(banner.Render(text), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.renderJukebox(), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderGrid draws the 4x4 board with cursor and selection highlights.
func (m GameModel) renderGrid(snap session.Snapshot) string {
	tileStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229"))
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
	cursorStyle := tileStyle.Reverse(true)
	selectedStyle := tileStyle.Background(lipgloss.Color("57")).Bold(true)

	var rows []string
	for row := 0; row < puzzle.Size; row++ {
		var cells []string
		for col := 0; col < puzzle.Size; col++ {
			p := puzzle.PositionAt(row, col)
			v := snap.Board.At(p)

			cell := "  · "
			if v != puzzle.Empty {
				cell = fmt.Sprintf(" %2d ", v)
			}

			style := tileStyle
			switch {
			case p == m.cursor:
				style = cursorStyle
			case p == snap.Selection:
				style = selectedStyle
			case v == puzzle.Empty:
				style = emptyStyle
			}
			cells = append(cells, style.Render(cell))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

// renderHUD draws the timer, score and category line.
func (m GameModel) renderHUD(snap session.Snapshot) string {
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	clock := fmt.Sprintf("%d:%02d", snap.Budget/60, snap.Budget%60)
	return fmt.Sprintf("%s  %s  %s",
		timeStyle.Render("TIME "+clock),
		fmt.Sprintf("SCORE %d", snap.Score),
		dimStyle.Render(strings.ToUpper(snap.Category)),
	)
}

// renderJukebox draws the now-playing line.
func (m GameModel) renderJukebox() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	now := m.jukebox.NowPlaying()
	if now == "" {
		return dimStyle.Render("jukebox: no tracks")
	}
	state := "paused"
	if m.jukebox.Playing() {
		state = "playing"
	}
	return dimStyle.Render(fmt.Sprintf("jukebox: %s (%s)", now, state))
}

// viewTrivia renders the trivia interrupt.
func (m GameModel) viewTrivia(snap session.Snapshot) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("TRIVIA TIME"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderHUD(snap), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(snap.Question.Prompt, m.width))
	b.WriteString("\n\n")

	for i, opt := range snap.Question.Options {
		b.WriteString(centerText(fmt.Sprintf("%d. %s", i+1, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "1-4: answer  |  correct: +200 and god mode  |  wrong: -15s"
	b.WriteString(centerText(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(hint), m.width))

	return b.String()
}

// viewEQMaster renders the special completion acknowledgment screen.
func (m GameModel) viewEQMaster(snap session.Snapshot) string {
	var b strings.Builder

	bannerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(1, 4)

	b.WriteString("\n\n")
	b.WriteString(centerText(bannerStyle.Render("EQ MASTER"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("You lined up every tile with time to spare.", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("+500 bonus  |  final score %d", snap.Score), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: continue", m.width))

	return b.String()
}

// viewNameEntry renders the post-game name prompt.
func (m GameModel) viewNameEntry(snap session.Snapshot) string {
	var b strings.Builder

	title := "TIME'S UP"
	if snap.State == session.StateWon {
		title = "PUZZLE SOLVED"
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Final score: %d", snap.Score), m.width))
	if snap.Special {
		b.WriteString("\n")
		b.WriteString(centerText("EQ Master run", m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText("Save your score as:", m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.name.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: submit  |  Esc: skip", m.width))

	return b.String()
}

// viewLeaderboard renders the category top list after the game.
func (m GameModel) viewLeaderboard(snap session.Snapshot) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("TOP SCORES - "+strings.ToUpper(snap.Category)), m.width))
	b.WriteString("\n\n")

	var content string
	if len(snap.Leaderboard) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No scores recorded yet.")
	} else {
		content = m.scores.View()
	}
	for _, line := range strings.Split(tableStyle.Render(content), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Your score: %d", snap.Score), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("R: new game  |  Q: quit", m.width))

	return b.String()
}

// newScoreTable builds the leaderboard table.
func newScoreTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "EQ", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(leaderboard.DefaultSize+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// scoreRows formats leaderboard entries as table rows.
func scoreRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		mark := ""
		if e.Special {
			mark = "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			mark,
		}
	}
	return rows
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
