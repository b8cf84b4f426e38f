package audio

import (
	_ "embed"
)

//go:embed defaults/tracks.yaml
var defaultTracksYAML []byte

// DefaultYAML returns the embedded default playlist, for tooling that wants
// to dump or seed a user copy.
func DefaultYAML() []byte {
	return defaultTracksYAML
}
