// Package session orchestrates one puzzle run: the countdown clock, the
// trivia interrupts, the override window and the end-of-run leaderboard
// submission. A Controller is the single owner of its board and score;
// the presentation layer feeds it events and renders snapshots.
package session

import (
	"io"
	"math/rand"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Brilu-22/tunetiles/internal/config"
	"github.com/Brilu-22/tunetiles/internal/leaderboard"
	"github.com/Brilu-22/tunetiles/internal/puzzle"
	"github.com/Brilu-22/tunetiles/internal/storage"
	"github.com/Brilu-22/tunetiles/internal/trivia"
)

// NoSelection marks the absence of a pending override selection.
const NoSelection puzzle.Position = -1

// Options configures a new session.
type Options struct {
	Config   config.GameConfig
	Category trivia.Category
	Seed     int64
	Scores   *leaderboard.Store
	Name     string // pre-filled player name; loaded from the store when empty
	Logger   *log.Logger
}

// Controller runs one session. All methods are safe for concurrent use;
// events arriving after the session ended or was torn down are no-ops.
type Controller struct {
	mu sync.Mutex

	id       string
	cfg      config.GameConfig
	logger   *log.Logger
	rng      *rand.Rand
	category trivia.Category
	scores   *leaderboard.Store

	state   State
	board   puzzle.Board
	budget  int // seconds remaining
	score   int
	elapsed int // running seconds, drives the trivia cadence

	question     trivia.Question // active while state == StateTrivia
	overrideLeft int
	selected     puzzle.Position

	special   bool
	acked     bool
	submitted bool
	entry     leaderboard.Entry // the submitted entry, set with submitted

	top     []leaderboard.Entry
	loaded  bool // the background score load has applied
	prefill string

	done     chan struct{}
	doneOnce sync.Once
}

// New shuffles a board and starts a running session. The category
// leaderboard and the remembered player name are loaded in the
// background and applied only while the session is still live.
// Defective options are normalized: a nil logger is replaced with a
// silent one, an invalid config with the defaults and a nil score
// store with an in-memory one.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid game config, falling back to defaults", "error", err)
		cfg = config.Default()
	}
	scores := opts.Scores
	if scores == nil {
		scores = leaderboard.NewStore(storage.NewMemory(), logger)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	c := &Controller{
		id:       uuid.NewString(),
		cfg:      cfg,
		logger:   logger,
		rng:      rng,
		category: opts.Category,
		scores:   scores,
		state:    StateRunning,
		board:    puzzle.ShuffleN(rng, cfg.Board.ShuffleSwaps),
		budget:   cfg.Session.Seconds,
		selected: NoSelection,
		prefill:  strings.TrimSpace(opts.Name),
		done:     make(chan struct{}),
	}

	c.logger.Debug("session started",
		"id", c.id,
		"category", c.category.ID,
		"seed", opts.Seed,
	)

	go c.loadScores()

	return c
}

// loadScores fetches the persisted leaderboard and last player name.
// Results are dropped if the session was torn down in the meantime. A
// submission that raced ahead of the load is merged with the stored
// entries here, and the persist it deferred runs now.
func (c *Controller) loadScores() {
	top := c.scores.Load(c.category.ID)
	name := c.scores.LastPlayerName()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() {
		return
	}
	c.loaded = true
	if c.prefill == "" {
		c.prefill = name
	}
	if !c.submitted {
		c.top = top
		return
	}
	c.top = leaderboard.Insert(top, c.entry, c.cfg.Leaderboard.Size)
	board := append([]leaderboard.Entry(nil), c.top...)
	go c.persist(c.entry.Name, board)
}

// Tick advances the session clock by one second. Running sessions burn
// budget and fire the trivia interrupt on the period; the override
// window counts itself down; trivia and terminal states are frozen.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() {
		return
	}

	switch c.state {
	case StateRunning:
		c.budget--
		if c.budget <= 0 {
			c.budget = 0
			c.end(StateTimeout)
			return
		}
		c.elapsed++
		if c.elapsed%c.cfg.Session.TriviaPeriod == 0 {
			c.question = c.category.Pick(c.rng)
			c.state = StateTrivia
			c.logger.Debug("trivia fired", "id", c.id, "elapsed", c.elapsed)
		}

	case StateOverride:
		c.overrideLeft--
		if c.overrideLeft <= 0 {
			c.overrideLeft = 0
			c.selected = NoSelection
			c.state = StateRunning
		}
	}
}

// TapTile applies a tile tap. While running it attempts a regular slide
// move; during the override window it drives the two-tap
// select-then-swap gesture. Illegal taps are silent no-ops.
func (c *Controller) TapTile(p puzzle.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() || !p.Valid() {
		return
	}

	switch c.state {
	case StateRunning:
		next, moved := puzzle.Move(c.board, p)
		if !moved {
			return
		}
		c.board = next
		if puzzle.IsSolved(c.board) {
			c.end(StateWon)
		}

	case StateOverride:
		if c.selected == NoSelection {
			if c.board.At(p) == puzzle.Empty {
				return
			}
			c.selected = p
			return
		}
		if c.selected == p {
			c.selected = NoSelection
			return
		}
		c.board = puzzle.ForceSwap(c.board, c.selected, p)
		c.selected = NoSelection
		if puzzle.IsSolved(c.board) {
			c.end(StateWon)
		}
	}
}

// AnswerTrivia resolves the active question with the given option index
// and reports whether it was correct. A correct answer pays the reward
// and opens the override window; a wrong one burns budget, floored at
// zero so the timeout fires on the next tick. Out-of-range indices are
// ignored and the question stays open.
func (c *Controller) AnswerTrivia(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() || c.state != StateTrivia {
		return false
	}
	if i < 0 || i >= len(c.question.Options) {
		return false
	}

	correct := i == c.question.Answer
	c.question = trivia.Question{}

	if correct {
		c.score += c.cfg.Scoring.TriviaReward
		c.overrideLeft = c.cfg.Session.OverrideSeconds
		c.selected = NoSelection
		c.state = StateOverride
		return true
	}

	c.budget -= c.cfg.Scoring.TriviaPenalty
	if c.budget < 0 {
		c.budget = 0
	}
	c.state = StateRunning
	return false
}

// AcknowledgeCompletion records that the player has seen the special
// completion screen, unlocking leaderboard submission.
func (c *Controller) AcknowledgeCompletion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() || c.state != StateWon || !c.special {
		return
	}
	c.acked = true
}

// SubmitName records the finished session on the category leaderboard
// under the given name and persists it in the background. It reports
// whether the submission was accepted: blank names, unfinished or
// already-submitted sessions and unacknowledged special wins are all
// rejected without any state change.
func (c *Controller) SubmitName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed() || !c.state.Ended() || c.submitted {
		return false
	}
	if c.special && !c.acked {
		return false
	}

	entry := leaderboard.Entry{Name: name, Score: c.score, Special: c.special}
	c.top = leaderboard.Insert(c.top, entry, c.cfg.Leaderboard.Size)
	c.submitted = true
	c.entry = entry
	c.prefill = name

	if !c.loaded {
		// The stored entries are still loading. Persisting this board
		// now would overwrite them; loadScores merges and persists once
		// they arrive.
		return true
	}

	board := append([]leaderboard.Entry(nil), c.top...)
	go c.persist(name, board)

	return true
}

// persist writes the updated leaderboard and player name. Writes from a
// torn-down session are skipped.
func (c *Controller) persist(name string, board []leaderboard.Entry) {
	select {
	case <-c.done:
		return
	default:
	}

	if err := c.scores.Save(c.category.ID, board); err != nil {
		c.logger.Warn("could not save leaderboard", "category", c.category.ID, "error", err)
	}
	if err := c.scores.SetLastPlayerName(name); err != nil {
		c.logger.Warn("could not save player name", "error", err)
	}
}

// end finalizes the session. Winning pays the base bonus plus the
// per-second bonus; a win with budget still on the clock is special and
// pays extra.
func (c *Controller) end(reason State) {
	if reason == StateWon {
		c.score += c.cfg.Scoring.WinBase + c.cfg.Scoring.WinPerSecond*c.budget
		if c.budget > 0 {
			c.special = true
			c.score += c.cfg.Scoring.SpecialBonus
		}
	}
	c.question = trivia.Question{}
	c.overrideLeft = 0
	c.selected = NoSelection
	c.state = reason

	c.logger.Debug("session ended",
		"id", c.id,
		"reason", reason,
		"score", c.score,
		"special", c.special,
	)
}

// Close tears the session down. Safe to call multiple times; every
// event and every pending storage callback becomes a no-op.
func (c *Controller) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
		c.logger.Debug("session closed", "id", c.id)
	})
}

// closed reports whether Close has been called. Callers hold c.mu or
// accept the inherent teardown race.
func (c *Controller) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
