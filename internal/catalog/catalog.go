package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Item sources. Carried items form the main column; gear and ground items
// land in the side columns under a naturalized category.
const (
	SourceCarried = "carried"
	SourceGear    = "gear"
	SourceGround  = "ground"
)

// Catalog is a parsed item catalog.
type Catalog struct {
	Title      string     `toml:"title"`
	Categories []Category `toml:"categories"`
	Items      []Item     `toml:"items"`
}

// Category is one display group. Lower ranks sort first.
type Category struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Rank int    `toml:"rank"`
}

// Item is one selectable catalog line.
type Item struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Category  string `toml:"category"`
	Count     int    `toml:"count"`
	WeightG   int    `toml:"weight_g"`
	VolumeML  int    `toml:"volume_ml"`
	Key       string `toml:"key"`
	Source    string `toml:"source"`
	Origin    string `toml:"origin"`
	Essential bool   `toml:"essential"`
}

// KeyRune returns the item's preferred quick key, 0 when unset.
func (i Item) KeyRune() rune {
	for _, r := range strings.TrimSpace(i.Key) {
		return r
	}
	return 0
}

// Load reads and validates a catalog file. An empty path yields the
// built-in demo catalog so the tool works without any setup.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return Catalog{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Catalog{}, fmt.Errorf("catalog %s does not exist", resolved)
		}
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var cat Catalog
	if err := toml.Unmarshal(bytes, &cat); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	cat.applyDefaults()
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// applyDefaults fills the fields the TOML may omit.
func (c *Catalog) applyDefaults() {
	if strings.TrimSpace(c.Title) == "" {
		c.Title = "Catalog"
	}
	for i := range c.Items {
		item := &c.Items[i]
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			item.Name = item.ID
		}
		if item.Count == 0 {
			item.Count = 1
		}
		item.Source = strings.ToLower(strings.TrimSpace(item.Source))
		if item.Source == "" {
			item.Source = SourceCarried
		}
	}
}

// Validate checks referential integrity. The selection engine assumes a
// clean catalog, so every problem here is a load-time error.
func (c *Catalog) Validate() error {
	cats := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		id := strings.TrimSpace(cat.ID)
		if id == "" {
			return fmt.Errorf("category %q has no id", cat.Name)
		}
		if cats[id] {
			return fmt.Errorf("duplicate category id %q", id)
		}
		cats[id] = true
	}

	items := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("item %q has no id", item.Name)
		}
		if items[id] {
			return fmt.Errorf("duplicate item id %q", id)
		}
		items[id] = true

		if !cats[item.Category] {
			return fmt.Errorf("item %q references unknown category %q", id, item.Category)
		}
		if item.Count < 0 {
			return fmt.Errorf("item %q has negative count %d", id, item.Count)
		}
		if item.WeightG < 0 || item.VolumeML < 0 {
			return fmt.Errorf("item %q has negative weight or volume", id)
		}
		switch item.Source {
		case SourceCarried, SourceGear, SourceGround:
		default:
			return fmt.Errorf("item %q has unknown source %q", id, item.Source)
		}
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
