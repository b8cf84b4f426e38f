package session

import (
	"github.com/Brilu-22/tunetiles/internal/leaderboard"
	"github.com/Brilu-22/tunetiles/internal/puzzle"
)

// State represents the current session state.
type State string

const (
	StateRunning  State = "running"
	StateTrivia   State = "trivia"
	StateOverride State = "override"
	StateWon      State = "won"
	StateTimeout  State = "timeout"
)

// Ended reports whether the state is terminal.
func (s State) Ended() bool {
	return s == StateWon || s == StateTimeout
}

// Question is the player-facing view of a trivia question. The correct
// index stays inside the controller.
type Question struct {
	Prompt  string
	Options []string
}

// Snapshot captures the complete session state for rendering and for
// determinism testing.
type Snapshot struct {
	ID       string
	Category string
	State    State

	Board  puzzle.Board
	Budget int // seconds remaining
	Score  int

	Question     Question        // set while State == StateTrivia
	OverrideLeft int             // seconds left in the override window
	Selection    puzzle.Position // pending override selection, NoSelection when none

	Special   bool
	Acked     bool
	Submitted bool

	Leaderboard []leaderboard.Entry
	NamePrefill string
}

// Snapshot returns the current session snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var q Question
	if c.state == StateTrivia {
		q = Question{
			Prompt:  c.question.Prompt,
			Options: append([]string(nil), c.question.Options...),
		}
	}

	return Snapshot{
		ID:           c.id,
		Category:     c.category.ID,
		State:        c.state,
		Board:        c.board,
		Budget:       c.budget,
		Score:        c.score,
		Question:     q,
		OverrideLeft: c.overrideLeft,
		Selection:    c.selected,
		Special:      c.special,
		Acked:        c.acked,
		Submitted:    c.submitted,
		Leaderboard:  append([]leaderboard.Entry(nil), c.top...),
		NamePrefill:  c.prefill,
	}
}
