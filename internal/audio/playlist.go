package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Playlist is the loadable track list.
type Playlist struct {
	Tracks []Track `yaml:"tracks"`
}

// LoadPlaylist loads the jukebox playlist.
// Search order: customPath -> ~/.tunetiles/tracks.yaml -> ./configs/tracks.yaml -> embedded default
func LoadPlaylist(customPath string) (*Playlist, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read playlist %s: %w", customPath, err)
		}
		return parsePlaylist(data, customPath)
	}

	if userPath := userPlaylistPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if p, err := parsePlaylist(data, userPath); err == nil {
				return p, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/tracks.yaml"); err == nil {
		if p, err := parsePlaylist(data, "configs/tracks.yaml"); err == nil {
			return p, nil
		}
	}

	return parsePlaylist(defaultTracksYAML, "embedded default")
}

func parsePlaylist(data []byte, source string) (*Playlist, error) {
	var p Playlist
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse playlist %s: %w", source, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid playlist %s: %w", source, err)
	}
	return &p, nil
}

// userPlaylistPath returns the path to the user playlist file, or empty if
// the home directory is unavailable.
func userPlaylistPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tunetiles", "tracks.yaml")
}

// Validate checks playlist shape: at least one track, unique ids, and a
// title, artist and positive length on every track.
func (p *Playlist) Validate() error {
	if len(p.Tracks) == 0 {
		return fmt.Errorf("playlist has no tracks")
	}

	seen := make(map[string]bool, len(p.Tracks))
	for i, t := range p.Tracks {
		if t.ID == "" {
			return fmt.Errorf("track %d has no id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate track id %q", t.ID)
		}
		seen[t.ID] = true

		if t.Title == "" {
			return fmt.Errorf("track %q has no title", t.ID)
		}
		if t.Artist == "" {
			return fmt.Errorf("track %q has no artist", t.ID)
		}
		if t.Seconds <= 0 {
			return fmt.Errorf("track %q has non-positive length", t.ID)
		}
	}
	return nil
}
