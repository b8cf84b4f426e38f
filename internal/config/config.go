// Package config provides YAML-based tuning for puzzle sessions: countdown
// budget, trivia cadence, scoring and shuffle depth.
package config

import "fmt"

// GameConfig contains all tunables for a puzzle session.
type GameConfig struct {
	Session     SessionConfig     `yaml:"session"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Board       BoardConfig       `yaml:"board"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// SessionConfig defines the session timers, all in whole seconds.
type SessionConfig struct {
	Seconds         int `yaml:"seconds"`          // countdown budget at session start
	TriviaPeriod    int `yaml:"trivia_period"`    // running seconds between trivia interrupts
	OverrideSeconds int `yaml:"override_seconds"` // length of the post-trivia override window
}

// ScoringConfig defines score rewards and the wrong-answer time penalty.
type ScoringConfig struct {
	TriviaReward  int `yaml:"trivia_reward"`  // points for a correct trivia answer
	TriviaPenalty int `yaml:"trivia_penalty"` // seconds removed for a wrong answer
	WinBase       int `yaml:"win_base"`       // flat points for solving the board
	WinPerSecond  int `yaml:"win_per_second"` // points per remaining second at the win
	SpecialBonus  int `yaml:"special_bonus"`  // extra points for finishing with time left
}

// BoardConfig defines shuffle parameters.
type BoardConfig struct {
	// ShuffleSwaps is the number of adjacent swaps used to scramble the
	// board. Values below 100 mix too little and are rejected.
	ShuffleSwaps int `yaml:"shuffle_swaps"`
}

// LeaderboardConfig defines leaderboard shape.
type LeaderboardConfig struct {
	Size int `yaml:"size"` // entries kept per category
}

// Validate checks that the configuration can drive a session.
func (c GameConfig) Validate() error {
	if c.Session.Seconds <= 0 {
		return fmt.Errorf("session.seconds must be positive, got %d", c.Session.Seconds)
	}
	if c.Session.TriviaPeriod <= 0 {
		return fmt.Errorf("session.trivia_period must be positive, got %d", c.Session.TriviaPeriod)
	}
	if c.Session.OverrideSeconds <= 0 {
		return fmt.Errorf("session.override_seconds must be positive, got %d", c.Session.OverrideSeconds)
	}
	if c.Scoring.TriviaPenalty < 0 {
		return fmt.Errorf("scoring.trivia_penalty must not be negative, got %d", c.Scoring.TriviaPenalty)
	}
	if c.Board.ShuffleSwaps < 100 {
		return fmt.Errorf("board.shuffle_swaps must be at least 100, got %d", c.Board.ShuffleSwaps)
	}
	if c.Leaderboard.Size <= 0 {
		return fmt.Errorf("leaderboard.size must be positive, got %d", c.Leaderboard.Size)
	}
	return nil
}
