// Package trivia loads and serves the multiple-choice question catalog that
// interrupts puzzle sessions. Questions are grouped into categories; each
// session plays against exactly one category.
package trivia

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OptionCount is the number of choices every question carries.
const OptionCount = 4

// Question is a single multiple-choice question. Answer indexes into
// Options.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
}

// Category is a named group of questions.
type Category struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Catalog is the full question bank.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Load loads the question catalog.
// Search order: customPath -> ~/.tunetiles/questions.yaml -> ./configs/questions.yaml -> embedded default
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userCatalogPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parse(data, userPath); err == nil {
				return c, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/questions.yaml"); err == nil {
		if c, err := parse(data, "configs/questions.yaml"); err == nil {
			return c, nil
		}
	}

	return parse(defaultQuestionsYAML, "embedded default")
}

func parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, err)
	}
	return &c, nil
}

// userCatalogPath returns the path to the user catalog file, or empty if the
// home directory is unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tunetiles", "questions.yaml")
}

// Validate checks catalog shape: at least one category, unique IDs, and
// exactly OptionCount options with an in-range answer on every question.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %q has no id", cat.Title)
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		if len(cat.Questions) == 0 {
			return fmt.Errorf("category %q has no questions", cat.ID)
		}
		for i, q := range cat.Questions {
			if q.Prompt == "" {
				return fmt.Errorf("category %q: question %d has no prompt", cat.ID, i)
			}
			if len(q.Options) != OptionCount {
				return fmt.Errorf("category %q: question %d has %d options, want %d", cat.ID, i, len(q.Options), OptionCount)
			}
			if q.Answer < 0 || q.Answer >= OptionCount {
				return fmt.Errorf("category %q: question %d answer %d out of range", cat.ID, i, q.Answer)
			}
		}
	}
	return nil
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// IDs returns the catalog's category ids in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		ids[i] = cat.ID
	}
	return ids
}

// Pick draws a uniformly random question. Repeats across draws are allowed;
// the catalog places no memory on selection.
func (cat Category) Pick(rng *rand.Rand) Question {
	return cat.Questions[rng.Intn(len(cat.Questions))]
}
