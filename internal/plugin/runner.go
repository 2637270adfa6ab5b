package plugin

import (
	"sort"

	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/logger"
	"github.com/mini-vite/create/internal/manifest"
)

// defaultPriority applies to names missing from the priority table.
const defaultPriority = 999

// priority orders plugins: lint first, then CSS frameworks.
var priority = map[string]int{
	"eslint":   1,
	"tailwind": 2,
	"unocss":   2,
}

// Priority returns the execution priority of name; lower runs first.
func Priority(name string) int {
	if p, ok := priority[name]; ok {
		return p
	}
	return defaultPriority
}

// Order returns names stably sorted by priority. The input is not modified.
func Order(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Priority(sorted[i]) < Priority(sorted[j])
	})
	return sorted
}

// Failure is a plugin that could not be applied.
type Failure struct {
	Err  error
	Name string
}

// Cause returns the human-readable failure message.
func (f Failure) Cause() string {
	return f.Err.Error()
}

// Result is the outcome of one Apply call, in execution order.
type Result struct {
	Succeeded []string
	Failed    []Failure
}

// OK reports whether every plugin was applied.
func (r *Result) OK() bool {
	return len(r.Failed) == 0
}

// Runner applies plugins from a registry.
type Runner struct {
	Registry *Registry
	Log      *logger.Logger
	OnStart  func(p Plugin)                // called before each plugin's setup
	OnDone   func(name string, err error) // called after each plugin, err nil on success
}

// Apply runs the setup of every selected plugin in priority order against
// the project at root. A failing, panicking or unknown plugin is recorded
// and the remaining plugins still run. Nothing is rolled back.
func (r *Runner) Apply(names []string, root, template string, m *manifest.Manifest) *Result {
	log := r.Log
	if log == nil {
		log = logger.NewDiscard()
	}

	res := &Result{}
	for _, name := range Order(names) {
		p, ok := r.Registry.Lookup(name)
		if !ok {
			err := errors.New(errors.EPluginNotFound, "Plugin not found")
			log.Printf("✖ Plugin %q not found", name)
			res.Failed = append(res.Failed, Failure{Name: name, Err: err})
			r.done(name, err)
			continue
		}

		log.Printf("Configuring %s...", p.Title())
		if r.OnStart != nil {
			r.OnStart(p)
		}

		if err := setup(p, root, template, m); err != nil {
			log.Printf("✖ Failed to configure %s: %s", p.Title(), err)
			res.Failed = append(res.Failed, Failure{Name: name, Err: err})
			r.done(name, err)
			continue
		}

		log.Printf("✔ %s configured", p.Title())
		res.Succeeded = append(res.Succeeded, name)
		r.done(name, nil)
	}

	if len(res.Succeeded) > 0 {
		log.Printf("Successfully configured %d plugin(s)", len(res.Succeeded))
	}
	if len(res.Failed) > 0 {
		log.Printf("Failed to configure %d plugin(s)", len(res.Failed))
	}
	return res
}

func (r *Runner) done(name string, err error) {
	if r.OnDone != nil {
		r.OnDone(name, err)
	}
}

// setup runs p.Setup, turning a panic into an E_PLUGIN_FAILED error.
func setup(p Plugin, root, template string, m *manifest.Manifest) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Newf(errors.EPluginFailed, "panic in %s: %v", p.Name(), v)
		}
	}()
	return p.Setup(root, template, m)
}
