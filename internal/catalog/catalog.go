// Package catalog lists the frameworks and template variants the scaffolder
// offers, and derives template facets from a template identifier.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Variant is one selectable template, e.g. "react-ts".
type Variant struct {
	Name    string `yaml:"name"`
	Display string `yaml:"display"`
	Color   string `yaml:"color"`
}

// Framework groups the variants of one UI framework.
type Framework struct {
	Name     string    `yaml:"name"`
	Display  string    `yaml:"display"`
	Color    string    `yaml:"color"`
	Variants []Variant `yaml:"variants"`
}

// Catalog is the full list of frameworks in display order.
type Catalog struct {
	Frameworks []Framework `yaml:"frameworks"`
}

// LoadOptions controls where the catalog is loaded from.
// Zero value loads the embedded catalog.
type LoadOptions struct {
	// LocalOverride, if set and present on disk, replaces the embedded catalog.
	LocalOverride string
}

// Load returns the catalog using the fallback chain:
//
//	Local override file → Embedded YAML
func Load(opts LoadOptions) (*Catalog, error) {
	if opts.LocalOverride != "" {
		data, err := os.ReadFile(opts.LocalOverride)
		if err == nil {
			// File exists, so parse errors are fatal.
			return parse(data)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read catalog override %s: %w", opts.LocalOverride, err)
		}
	}
	return parse(embeddedCatalog)
}

// LoadDefault loads the embedded catalog.
func LoadDefault() (*Catalog, error) {
	return Load(LoadOptions{})
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Frameworks) == 0 {
		return fmt.Errorf("catalog has no frameworks")
	}
	seen := make(map[string]bool)
	for _, f := range c.Frameworks {
		if len(f.Variants) == 0 {
			return fmt.Errorf("framework %q has no variants", f.Name)
		}
		for _, v := range f.Variants {
			if v.Name == "" {
				return fmt.Errorf("framework %q has a variant without a name", f.Name)
			}
			if seen[v.Name] {
				return fmt.Errorf("duplicate template %q", v.Name)
			}
			seen[v.Name] = true
		}
	}
	return nil
}

// Templates returns every template identifier in display order.
func (c *Catalog) Templates() []string {
	var ids []string
	for _, f := range c.Frameworks {
		for _, v := range f.Variants {
			ids = append(ids, v.Name)
		}
	}
	return ids
}

// Has reports whether id is a known template identifier.
func (c *Catalog) Has(id string) bool {
	for _, t := range c.Templates() {
		if t == id {
			return true
		}
	}
	return false
}

// Framework returns the framework with the given name.
func (c *Catalog) Framework(name string) (Framework, bool) {
	for _, f := range c.Frameworks {
		if f.Name == name {
			return f, true
		}
	}
	return Framework{}, false
}
