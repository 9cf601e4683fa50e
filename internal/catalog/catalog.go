// Package catalog provides the genre, mood, instrument, vocal and meta-tag
// dictionaries offered as suggestions in the studio. Built-in entries are
// embedded; users can extend them with their own YAML file.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var builtin []byte

// Category names a dictionary in the catalog.
type Category string

const (
	CategoryGenres      Category = "genres"
	CategoryMoods       Category = "moods"
	CategoryInstruments Category = "instruments"
	CategoryVocals      Category = "vocals"
	CategoryTags        Category = "tags"
)

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{CategoryGenres, CategoryMoods, CategoryInstruments, CategoryVocals, CategoryTags}
}

// ErrUnknownCategory is returned for a category name not in Categories.
var ErrUnknownCategory = errors.New("unknown catalog category")

// Catalog holds the suggestion dictionaries.
type Catalog struct {
	Genres      []string `yaml:"genres"`
	Moods       []string `yaml:"moods"`
	Instruments []string `yaml:"instruments"`
	Vocals      []string `yaml:"vocals"`
	Tags        []string `yaml:"tags"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(builtin, c); err != nil {
		return nil, fmt.Errorf("decode built-in catalog: %w", err)
	}
	c.dedupe()
	return c, nil
}

// Load returns the built-in catalog extended with entries from overridePath.
// A missing override file is not an error.
func Load(overridePath string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if overridePath == "" {
		return c, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", overridePath, err)
	}

	var user Catalog
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", overridePath, err)
	}

	c.Genres = append(c.Genres, user.Genres...)
	c.Moods = append(c.Moods, user.Moods...)
	c.Instruments = append(c.Instruments, user.Instruments...)
	c.Vocals = append(c.Vocals, user.Vocals...)
	c.Tags = append(c.Tags, user.Tags...)
	c.dedupe()

	return c, nil
}

// List returns the entries of a category.
func (c *Catalog) List(cat Category) ([]string, error) {
	switch cat {
	case CategoryGenres:
		return c.Genres, nil
	case CategoryMoods:
		return c.Moods, nil
	case CategoryInstruments:
		return c.Instruments, nil
	case CategoryVocals:
		return c.Vocals, nil
	case CategoryTags:
		return c.Tags, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, cat)
	}
}

// Search returns entries of cat containing query, case-insensitively.
// Prefix matches sort before other matches.
func (c *Catalog) Search(cat Category, query string) []string {
	entries, err := c.List(cat)
	if err != nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]string(nil), entries...)
	}

	var matches []string
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e), q) {
			matches = append(matches, e)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(matches[i]), q)
		pj := strings.HasPrefix(strings.ToLower(matches[j]), q)
		return pi && !pj
	})
	return matches
}

func (c *Catalog) dedupe() {
	c.Genres = dedupe(c.Genres)
	c.Moods = dedupe(c.Moods)
	c.Instruments = dedupe(c.Instruments)
	c.Vocals = dedupe(c.Vocals)
	c.Tags = dedupe(c.Tags)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, e := range in {
		e = strings.TrimSpace(e)
		key := strings.ToLower(e)
		if e == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
