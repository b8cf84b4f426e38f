package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedPlaylist(t *testing.T) {
	p, err := parsePlaylist(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("parsePlaylist(embedded) error = %v", err)
	}
	if len(p.Tracks) == 0 {
		t.Fatal("embedded playlist is empty")
	}
	for _, tr := range p.Tracks {
		if tr.Duration() <= 0 {
			t.Errorf("track %q has duration %v", tr.ID, tr.Duration())
		}
	}
}

func TestLoadPlaylistCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.yaml")
	content := `tracks:
  - id: only
    title: Only Track
    artist: Solo
    seconds: 90
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPlaylist(path)
	if err != nil {
		t.Fatalf("LoadPlaylist() error = %v", err)
	}
	if len(p.Tracks) != 1 || p.Tracks[0].ID != "only" {
		t.Errorf("LoadPlaylist() = %+v", p.Tracks)
	}
}

func TestLoadPlaylistCustomPathErrors(t *testing.T) {
	if _, err := LoadPlaylist(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadPlaylist(missing) error = nil, want error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("tracks: [{id: x}]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlaylist(bad); err == nil {
		t.Error("LoadPlaylist(invalid) error = nil, want error")
	}
}

func TestPlaylistValidate(t *testing.T) {
	valid := func() *Playlist {
		return &Playlist{Tracks: []Track{
			{ID: "a", Title: "A", Artist: "X", Seconds: 10},
			{ID: "b", Title: "B", Artist: "X", Seconds: 20},
		}}
	}

	tests := []struct {
		name    string
		mutate  func(*Playlist)
		wantErr bool
	}{
		{"valid", func(p *Playlist) {}, false},
		{"empty", func(p *Playlist) { p.Tracks = nil }, true},
		{"missing id", func(p *Playlist) { p.Tracks[0].ID = "" }, true},
		{"duplicate id", func(p *Playlist) { p.Tracks[1].ID = "a" }, true},
		{"missing title", func(p *Playlist) { p.Tracks[0].Title = "" }, true},
		{"missing artist", func(p *Playlist) { p.Tracks[1].Artist = "" }, true},
		{"zero length", func(p *Playlist) { p.Tracks[0].Seconds = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
