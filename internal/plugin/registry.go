package plugin

import "fmt"

// cssFrameworks are offered as a single choice rather than a checkbox.
var cssFrameworks = map[string]bool{
	"tailwind": true,
	"unocss":   true,
}

// IsCSSFramework reports whether name is one of the mutually exclusive CSS frameworks.
func IsCSSFramework(name string) bool {
	return cssFrameworks[name]
}

// Registry holds plugins by name in registration order. It is read-only
// once constructed.
type Registry struct {
	byName  map[string]Plugin
	plugins []Plugin
}

// NewRegistry registers plugins in order. Names must be non-empty and unique.
func NewRegistry(plugins ...Plugin) (*Registry, error) {
	r := &Registry{byName: make(map[string]Plugin, len(plugins))}
	for _, p := range plugins {
		name := p.Name()
		if name == "" {
			return nil, fmt.Errorf("plugin %q has an empty name", p.Title())
		}
		if _, dup := r.byName[name]; dup {
			return nil, fmt.Errorf("duplicate plugin %q", name)
		}
		r.byName[name] = p
		r.plugins = append(r.plugins, p)
	}
	return r, nil
}

// Builtin returns a registry of the built-in plugins: eslint, tailwind, unocss.
func Builtin() *Registry {
	r, err := NewRegistry(ESLint{}, Tailwind{}, UnoCSS{})
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Choices returns the presentable metadata of every plugin in registration order.
func (r *Registry) Choices() []Choice {
	choices := make([]Choice, len(r.plugins))
	for i, p := range r.plugins {
		choices[i] = Choice{Title: p.Title(), Name: p.Name(), Description: p.Description()}
	}
	return choices
}

// Names returns every plugin name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.plugins))
	for i, p := range r.plugins {
		names[i] = p.Name()
	}
	return names
}
