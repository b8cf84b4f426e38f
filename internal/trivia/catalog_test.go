package trivia

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if len(c.Categories) != 4 {
		t.Errorf("embedded catalog has %d categories, want 4", len(c.Categories))
	}
	for _, cat := range c.Categories {
		if len(cat.Questions) != 10 {
			t.Errorf("category %q has %d questions, want 10", cat.ID, len(cat.Questions))
		}
		if cat.Title == "" {
			t.Errorf("category %q has no title", cat.ID)
		}
	}

	for _, id := range []string{"rock", "pop", "hiphop", "classical"} {
		if _, ok := c.Category(id); !ok {
			t.Errorf("category %q missing from embedded catalog", id)
		}
	}
	if _, ok := c.Category("jazz"); ok {
		t.Error("unknown category should not resolve")
	}
}

func TestIDsKeepDeclarationOrder(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"rock", "pop", "hiphop", "classical"}
	got := c.IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := `categories:
  - id: test
    title: Test
    questions:
      - prompt: "2+2?"
        options: ["3", "4", "5", "6"]
        answer: 1
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	cat, ok := c.Category("test")
	if !ok || len(cat.Questions) != 1 {
		t.Fatalf("custom catalog not loaded: %+v", c)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load with missing explicit path should fail")
	}
}

func TestValidate(t *testing.T) {
	valid := Question{Prompt: "p", Options: []string{"a", "b", "c", "d"}, Answer: 0}

	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{
			name:    "empty catalog",
			catalog: Catalog{},
			wantErr: true,
		},
		{
			name: "valid",
			catalog: Catalog{Categories: []Category{
				{ID: "a", Title: "A", Questions: []Question{valid}},
			}},
			wantErr: false,
		},
		{
			name: "duplicate ids",
			catalog: Catalog{Categories: []Category{
				{ID: "a", Questions: []Question{valid}},
				{ID: "a", Questions: []Question{valid}},
			}},
			wantErr: true,
		},
		{
			name: "missing id",
			catalog: Catalog{Categories: []Category{
				{Title: "A", Questions: []Question{valid}},
			}},
			wantErr: true,
		},
		{
			name: "no questions",
			catalog: Catalog{Categories: []Category{
				{ID: "a"},
			}},
			wantErr: true,
		},
		{
			name: "wrong option count",
			catalog: Catalog{Categories: []Category{
				{ID: "a", Questions: []Question{{Prompt: "p", Options: []string{"x", "y"}, Answer: 0}}},
			}},
			wantErr: true,
		},
		{
			name: "answer out of range",
			catalog: Catalog{Categories: []Category{
				{ID: "a", Questions: []Question{{Prompt: "p", Options: []string{"a", "b", "c", "d"}, Answer: 4}}},
			}},
			wantErr: true,
		},
		{
			name: "empty prompt",
			catalog: Catalog{Categories: []Category{
				{ID: "a", Questions: []Question{{Options: []string{"a", "b", "c", "d"}, Answer: 0}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPick(t *testing.T) {
	cat := Category{ID: "t", Questions: []Question{
		{Prompt: "q0", Options: []string{"a", "b", "c", "d"}, Answer: 0},
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Answer: 1},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, Answer: 2},
	}}

	// Same seed, same draw sequence.
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	for i := range 20 {
		if cat.Pick(r1).Prompt != cat.Pick(r2).Prompt {
			t.Fatalf("draw %d differed between identical seeds", i)
		}
	}

	// Every question is reachable; repeats are allowed.
	seen := make(map[string]bool)
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		seen[cat.Pick(rng).Prompt] = true
	}
	if len(seen) != len(cat.Questions) {
		t.Errorf("after 200 draws saw %d distinct questions, want %d", len(seen), len(cat.Questions))
	}
}
