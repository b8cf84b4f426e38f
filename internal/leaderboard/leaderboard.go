// Package leaderboard keeps the best finished games per trivia category.
//
// Boards are stored as JSON arrays in the key-value store under
// "leaderboard_<category>", best score first. Reading is fail-open: a
// missing or malformed board is an empty one, because scores are a
// nicety and must never take the game down.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Brilu-22/tunetiles/internal/storage"
)

// DefaultSize is how many entries a category board keeps.
const DefaultSize = 5

const (
	keyPrefix     = "leaderboard_"
	keyLastPlayer = "last_player_name"
)

// Entry is one finished game on a board.
type Entry struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Special bool   `json:"special"`
}

// Insert returns board with e added, ordered best first and trimmed to
// size entries. Equal scores keep their arrival order, so an earlier
// entry stays ahead of a later one with the same score.
func Insert(board []Entry, e Entry, size int) []Entry {
	out := make([]Entry, 0, len(board)+1)
	out = append(out, board...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if size > 0 && len(out) > size {
		out = out[:size]
	}
	return out
}

// Store reads and writes boards through the key-value store.
type Store struct {
	kv     storage.KV
	logger *log.Logger
}

// NewStore wraps the given key-value store.
func NewStore(kv storage.KV, logger *log.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Load returns the board for a category. A missing or unreadable board
// is returned as empty.
func (s *Store) Load(category string) []Entry {
	raw, ok, err := s.kv.Get(keyPrefix + category)
	if err != nil {
		s.logger.Warn("could not load leaderboard", "category", category, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var board []Entry
	if err := json.Unmarshal([]byte(raw), &board); err != nil {
		s.logger.Warn("discarding malformed leaderboard", "category", category, "error", err)
		return nil
	}
	return board
}

// Save persists the board for a category.
func (s *Store) Save(category string, board []Entry) error {
	raw, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("leaderboard: cannot encode board for %q: %w", category, err)
	}
	if err := s.kv.Set(keyPrefix+category, string(raw)); err != nil {
		return fmt.Errorf("leaderboard: cannot save board for %q: %w", category, err)
	}
	return nil
}

// LastPlayerName returns the name used for the most recent submission,
// or "" if none is stored.
func (s *Store) LastPlayerName() string {
	name, ok, err := s.kv.Get(keyLastPlayer)
	if err != nil {
		s.logger.Warn("could not load last player name", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(name)
}

// SetLastPlayerName remembers the name for the next session's prompt.
func (s *Store) SetLastPlayerName(name string) error {
	if err := s.kv.Set(keyLastPlayer, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("leaderboard: cannot save player name: %w", err)
	}
	return nil
}
