package audio

import (
	"testing"
	"time"
)

func testTracks() []Track {
	return []Track{
		{ID: "a", Title: "Alpha", Artist: "The Testers", Seconds: 100},
		{ID: "b", Title: "Beta", Artist: "The Testers", Seconds: 200},
		{ID: "c", Title: "Gamma", Artist: "The Testers", Seconds: 300},
	}
}

func TestNewPlayerStartsPaused(t *testing.T) {
	p := NewPlayer(testTracks())

	if p.Playing() {
		t.Error("new player is playing, want paused")
	}
	cur, ok := p.Current()
	if !ok || cur.ID != "a" {
		t.Errorf("Current() = %+v, %v, want track a", cur, ok)
	}
}

func TestPlayPauseToggle(t *testing.T) {
	p := NewPlayer(testTracks())

	p.Play()
	if !p.Playing() {
		t.Error("Playing() = false after Play()")
	}

	p.Pause()
	if p.Playing() {
		t.Error("Playing() = true after Pause()")
	}

	p.Toggle()
	if !p.Playing() {
		t.Error("Playing() = false after Toggle() from paused")
	}
	p.Toggle()
	if p.Playing() {
		t.Error("Playing() = true after Toggle() from playing")
	}
}

func TestNextPrevWrapAround(t *testing.T) {
	p := NewPlayer(testTracks())

	p.Prev()
	if cur, _ := p.Current(); cur.ID != "c" {
		t.Errorf("Prev() from first track landed on %q, want c", cur.ID)
	}

	p.Next()
	if cur, _ := p.Current(); cur.ID != "a" {
		t.Errorf("Next() from last track landed on %q, want a", cur.ID)
	}

	p.Next()
	p.Next()
	if cur, _ := p.Current(); cur.ID != "c" {
		t.Errorf("two Next() landed on %q, want c", cur.ID)
	}
}

func TestNextKeepsPlayingState(t *testing.T) {
	p := NewPlayer(testTracks())
	p.Play()
	p.Next()
	if !p.Playing() {
		t.Error("Next() paused the player")
	}
}

func TestSelect(t *testing.T) {
	p := NewPlayer(testTracks())

	if !p.Select(2) {
		t.Fatal("Select(2) = false")
	}
	if cur, _ := p.Current(); cur.ID != "c" {
		t.Errorf("Current() = %q after Select(2), want c", cur.ID)
	}

	for _, i := range []int{-1, 3, 100} {
		if p.Select(i) {
			t.Errorf("Select(%d) = true, want false", i)
		}
	}
	if cur, _ := p.Current(); cur.ID != "c" {
		t.Errorf("rejected Select moved cursor to %q", cur.ID)
	}
}

func TestEmptyPlaylistIsSafe(t *testing.T) {
	p := NewPlayer(nil)

	p.Play()
	if p.Playing() {
		t.Error("Play() on empty playlist set playing")
	}

	p.Next()
	p.Prev()
	if _, ok := p.Current(); ok {
		t.Error("Current() ok = true on empty playlist")
	}
	if got := p.NowPlaying(); got != "" {
		t.Errorf("NowPlaying() = %q on empty playlist, want empty", got)
	}
	if p.Select(0) {
		t.Error("Select(0) = true on empty playlist")
	}
}

func TestNowPlaying(t *testing.T) {
	p := NewPlayer(testTracks())
	want := "Alpha by The Testers"
	if got := p.NowPlaying(); got != want {
		t.Errorf("NowPlaying() = %q, want %q", got, want)
	}
}

func TestTrackDuration(t *testing.T) {
	tr := Track{Seconds: 214}
	if got := tr.Duration(); got != 214*time.Second {
		t.Errorf("Duration() = %v, want %v", got, 214*time.Second)
	}
}

func TestTracksReturnsCopy(t *testing.T) {
	p := NewPlayer(testTracks())

	got := p.Tracks()
	if len(got) != 3 || got[0].ID != "a" {
		t.Fatalf("Tracks() = %+v, want the playlist", got)
	}

	got[0].Title = "mutated"
	if cur, _ := p.Current(); cur.Title != "Alpha" {
		t.Error("mutating the returned slice changed the player's playlist")
	}
}
