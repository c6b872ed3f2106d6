// Package catalog defines the screening question battery: the ordered main
// items grouped into categories, and the standalone safety item.
//
// The catalog is loaded once at process start and never mutated afterwards.
// A built-in Spanish battery is provided by Default; deployments can swap it
// out with a YAML file via Load.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Answer value scale bounds. Every main item and the safety item are
// answered on the same ordinal scale.
const (
	ValueMin = 0 // Nunca
	ValueMax = 3 // Siempre
)

// Category identifies a fixed grouping of items whose effective values sum
// to a subscore. The string value doubles as the wire key used when
// submitting results (scoreEstres, scoreAnimo, scoreConfianza).
type Category string

const (
	CategoryStress     Category = "estres"
	CategoryMood       Category = "animo"
	CategoryConfidence Category = "confianza"
)

// Categories lists all categories in display order.
var Categories = []Category{CategoryStress, CategoryMood, CategoryConfidence}

// Label returns the human-readable Spanish label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryStress:
		return "Estrés y nerviosismo"
	case CategoryMood:
		return "Ánimo y energía"
	case CategoryConfidence:
		return "Confianza y disfrute"
	default:
		return string(c)
	}
}

// Valid reports whether the category is one of the known closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryStress, CategoryMood, CategoryConfidence:
		return true
	}
	return false
}

// Item is a single scored question belonging to one category.
// When Reversed is set the raw 0-3 answer contributes 3-value to every
// score instead of the value itself.
type Item struct {
	ID       int      `yaml:"id"`
	Text     string   `yaml:"text"`
	Category Category `yaml:"category"`
	Reversed bool     `yaml:"reversed,omitempty"`
}

// SafetyItem is the standalone risk-screening question. It is excluded from
// the main score and category subscores; it only drives the safety alert.
type SafetyItem struct {
	ID   int    `yaml:"id"`
	Text string `yaml:"text"`
}

// Catalog holds the full immutable battery: the ordered main items plus the
// safety item.
type Catalog struct {
	Items  []Item     `yaml:"items"`
	Safety SafetyItem `yaml:"safety"`
}

// NumMain returns the number of main (scored) items.
func (c *Catalog) NumMain() int {
	return len(c.Items)
}

// TotalQuestions returns the number of questions a respondent answers,
// main items plus the safety item. Progress indicators use this count.
func (c *Catalog) TotalQuestions() int {
	return len(c.Items) + 1
}

// MaxScore returns the highest reachable total score (all items at ValueMax).
func (c *Catalog) MaxScore() int {
	return len(c.Items) * ValueMax
}

// ItemByID returns the main item with the given id, or nil if absent.
// The safety item is never returned here.
func (c *Catalog) ItemByID(id int) *Item {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemsInCategory returns the main items belonging to the given category,
// in catalog order.
func (c *Catalog) ItemsInCategory(cat Category) []Item {
	var items []Item
	for _, it := range c.Items {
		if it.Category == cat {
			items = append(items, it)
		}
	}
	return items
}

// Validate checks the structural invariants of the catalog: at least one
// item, unique ids, non-empty texts, known categories, every category
// populated, and a safety item whose id is disjoint from the main id space.
func (c *Catalog) Validate() error {
	if len(c.Items) == 0 {
		return errors.New("catalog has no items")
	}

	seen := make(map[int]bool, len(c.Items))
	perCategory := make(map[Category]int)
	for i, it := range c.Items {
		if it.Text == "" {
			return fmt.Errorf("item %d (position %d): text is required", it.ID, i)
		}
		if !it.Category.Valid() {
			return fmt.Errorf("item %d: unknown category %q", it.ID, it.Category)
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id %d", it.ID)
		}
		seen[it.ID] = true
		perCategory[it.Category]++
	}

	for _, cat := range Categories {
		if perCategory[cat] == 0 {
			return fmt.Errorf("category %q has no items", cat)
		}
	}

	if c.Safety.Text == "" {
		return errors.New("safety item text is required")
	}
	if seen[c.Safety.ID] {
		return fmt.Errorf("safety item id %d collides with a main item id", c.Safety.ID)
	}

	return nil
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return &cat, nil
}
