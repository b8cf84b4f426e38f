package config

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ValidPreset reports whether p names a known preset.
func ValidPreset(p Preset) bool {
	switch p {
	case PresetEasy, PresetNormal, PresetHard:
		return true
	}
	return false
}

// ApplyPreset adjusts the session timers for a difficulty preset. Scoring is
// never touched so leaderboard entries stay comparable across presets.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Session.Seconds = 90
		cfg.Session.OverrideSeconds = 8
	case PresetHard:
		cfg.Session.Seconds = 45
		cfg.Session.TriviaPeriod = 10
		cfg.Session.OverrideSeconds = 3
	case PresetNormal:
		// Reference timing, nothing to adjust.
	}
}
