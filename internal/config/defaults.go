package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the reference configuration: a 60-second session with a
// trivia interrupt every 15 running seconds and a 5-second override window.
func Default() GameConfig {
	return GameConfig{
		Session: SessionConfig{
			Seconds:         60,
			TriviaPeriod:    15,
			OverrideSeconds: 5,
		},
		Scoring: ScoringConfig{
			TriviaReward:  200,
			TriviaPenalty: 15,
			WinBase:       1000,
			WinPerSecond:  10,
			SpecialBonus:  500,
		},
		Board: BoardConfig{
			ShuffleSwaps: 150,
		},
		Leaderboard: LeaderboardConfig{
			Size: 5,
		},
	}
}
