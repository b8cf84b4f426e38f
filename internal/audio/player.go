// Package audio holds the jukebox: track metadata and playback state.
//
// A Player is an owned handle, not a shared singleton. Whoever constructs
// it passes it to the one screen that controls playback; nothing in this
// package reaches for global state. The player tracks WHAT would be
// playing, never touches codecs or sound devices.
package audio

import (
	"fmt"
	"time"
)

// Track describes one playlist entry.
type Track struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Artist  string `yaml:"artist"`
	Album   string `yaml:"album"`
	Year    int    `yaml:"year"`
	Seconds int    `yaml:"seconds"`
}

// Duration returns the track length.
func (t Track) Duration() time.Duration {
	return time.Duration(t.Seconds) * time.Second
}

// Player is playback state over a fixed playlist: a cursor and a
// playing flag. Every method is safe on an empty playlist. Not safe for
// concurrent use; the owning screen drives it from its event loop.
type Player struct {
	tracks  []Track
	cursor  int
	playing bool
}

// NewPlayer returns a paused player positioned at the first track.
func NewPlayer(tracks []Track) *Player {
	return &Player{tracks: tracks}
}

// Play starts playback of the current track.
func (p *Player) Play() {
	if len(p.tracks) == 0 {
		return
	}
	p.playing = true
}

// Pause stops playback, keeping the cursor.
func (p *Player) Pause() {
	p.playing = false
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() {
	if p.playing {
		p.Pause()
		return
	}
	p.Play()
}

// Next advances to the following track, wrapping at the end of the
// playlist. The playing flag is unchanged.
func (p *Player) Next() {
	if len(p.tracks) == 0 {
		return
	}
	p.cursor = (p.cursor + 1) % len(p.tracks)
}

// Prev moves to the preceding track, wrapping at the start of the
// playlist. The playing flag is unchanged.
func (p *Player) Prev() {
	if len(p.tracks) == 0 {
		return
	}
	p.cursor = (p.cursor - 1 + len(p.tracks)) % len(p.tracks)
}

// Select jumps to the track at index i. Out-of-range indices are
// rejected without moving the cursor.
func (p *Player) Select(i int) bool {
	if i < 0 || i >= len(p.tracks) {
		return false
	}
	p.cursor = i
	return true
}

// Current returns the track under the cursor.
func (p *Player) Current() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}
	return p.tracks[p.cursor], true
}

// Playing reports whether playback is active.
func (p *Player) Playing() bool {
	return p.playing
}

// Tracks returns a copy of the playlist.
func (p *Player) Tracks() []Track {
	out := make([]Track, len(p.tracks))
	copy(out, p.tracks)
	return out
}

// NowPlaying returns a one-line description of the current track, or ""
// on an empty playlist.
func (p *Player) NowPlaying() string {
	t, ok := p.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s by %s", t.Title, t.Artist)
}
