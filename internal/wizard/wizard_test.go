package wizard

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/plugin"
	"github.com/mini-vite/create/internal/scaffold"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	cat, err := catalog.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	return Options{Catalog: cat, Plugins: plugin.Builtin().Choices()}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order and returns the resulting model.
func press(t *testing.T, m wizardModel, keys ...string) wizardModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(wizardModel)
	}
	return m
}

// TestDefaultSelection verifies --yes defaults: default directory, first
// template, no features.
func TestDefaultSelection(t *testing.T) {
	sel := defaultSelection(testOptions(t))

	if sel.TargetDir != scaffold.DefaultTargetDir || sel.PackageName != scaffold.DefaultTargetDir {
		t.Errorf("target = %q, package = %q", sel.TargetDir, sel.PackageName)
	}
	if sel.Template != "vue-ts" {
		t.Errorf("Template = %q, want vue-ts", sel.Template)
	}
	if len(sel.Features) != 0 {
		t.Errorf("Features = %v", sel.Features)
	}
}

// TestDefaultSelectionOverrides verifies CSS is appended after checkbox
// features and an invalid directory name yields a valid package name.
func TestDefaultSelectionOverrides(t *testing.T) {
	opts := testOptions(t)
	opts.TargetDir = "My App/"
	opts.Template = "react"
	opts.Features = []string{"unocss", "eslint", "eslint"}
	opts.CSS = "tailwind"

	sel := defaultSelection(opts)
	if sel.TargetDir != "My App" || sel.PackageName != "my-app" {
		t.Errorf("target = %q, package = %q", sel.TargetDir, sel.PackageName)
	}
	if sel.Template != "react" {
		t.Errorf("Template = %q", sel.Template)
	}
	if want := []string{"eslint", "tailwind"}; !reflect.DeepEqual(sel.Features, want) {
		t.Errorf("Features = %v, want %v", sel.Features, want)
	}
}

func TestDefaultSelectionUnknownTemplate(t *testing.T) {
	opts := testOptions(t)
	opts.Template = "svelte"
	if got := defaultSelection(opts).Template; got != "vue-ts" {
		t.Errorf("Template = %q, want vue-ts", got)
	}
}

func TestNewModelSkipsDecidedStages(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		want   stage
	}{
		{"nothing given", func(*Options) {}, stageName},
		{"dir given", func(o *Options) { o.TargetDir = "app" }, stageTemplate},
		{"invalid dir given", func(o *Options) { o.TargetDir = "My App" }, stageName},
		{"dir and template", func(o *Options) {
			o.TargetDir = "app"
			o.Template = "react-ts"
		}, stageFeatures},
		{"everything", func(o *Options) {
			o.TargetDir = "app"
			o.Template = "react-ts"
			o.FeaturesSet = true
		}, stageDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t)
			tt.modify(&opts)
			if got := newModel(opts).stage; got != tt.want {
				t.Errorf("stage = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestPackageNameFollowsProjectName verifies the package name tracks the
// project name until edited.
func TestPackageNameFollowsProjectName(t *testing.T) {
	m := newModel(testOptions(t))

	m.nameInput.SetValue("Cool Project")
	m.syncPackageName()
	if got := m.pkgInput.Value(); got != "cool-project" {
		t.Errorf("package = %q, want cool-project", got)
	}

	m.pkgTouched = true
	m.nameInput.SetValue("other")
	m.syncPackageName()
	if got := m.pkgInput.Value(); got != "cool-project" {
		t.Errorf("package changed after edit: %q", got)
	}
}

func TestNameStageRejectsInvalidPackage(t *testing.T) {
	m := newModel(testOptions(t))
	m.pkgTouched = true
	m.pkgInput.SetValue("Bad Name")

	m = press(t, m, "enter")
	if m.stage != stageName || m.errMsg == "" {
		t.Errorf("stage = %d, errMsg = %q", m.stage, m.errMsg)
	}
}

// TestFullFlow walks every stage and checks the resulting selection.
func TestFullFlow(t *testing.T) {
	m := newModel(testOptions(t))

	// name → template (default name) → react-ts (third variant)
	m = press(t, m, "enter")
	if m.stage != stageTemplate {
		t.Fatalf("stage = %d, want template", m.stage)
	}
	m = press(t, m, "down", "down", "enter")
	if m.stage != stageFeatures {
		t.Fatalf("stage = %d, want features", m.stage)
	}

	// eslint checkbox, then None, Tailwind, UnoCSS radio: pick UnoCSS, then Tailwind.
	m = press(t, m, " ", "down", "down", "down", " ", "up", " ", "enter")
	if m.stage != stageConfirm {
		t.Fatalf("stage = %d, want confirm", m.stage)
	}

	m = press(t, m, "y")
	if !m.confirmed || m.cancelled {
		t.Fatalf("confirmed = %v, cancelled = %v", m.confirmed, m.cancelled)
	}

	sel := m.toSelection()
	want := &scaffold.Selection{
		TargetDir:   scaffold.DefaultTargetDir,
		PackageName: scaffold.DefaultTargetDir,
		Template:    "react-ts",
		Features:    []string{"eslint", "tailwind"},
	}
	if !reflect.DeepEqual(sel, want) {
		t.Errorf("selection = %+v, want %+v", sel, want)
	}
}

func TestCSSIsExclusive(t *testing.T) {
	opts := testOptions(t)
	opts.CSS = "tailwind"
	m := newModel(opts)
	m.stage = stageFeatures

	m.cursor = len(m.features) + 2 // unocss
	m.toggleCursor()

	var checked []string
	for _, c := range m.css {
		if c.checked {
			checked = append(checked, c.title)
		}
	}
	if want := []string{"UnoCSS"}; !reflect.DeepEqual(checked, want) {
		t.Errorf("checked = %v, want %v", checked, want)
	}
}

func TestCancel(t *testing.T) {
	for _, s := range []stage{stageName, stageTemplate, stageFeatures, stageConfirm} {
		m := newModel(testOptions(t))
		m.stage = s
		m = press(t, m, "esc")
		if !m.cancelled {
			t.Errorf("stage %d: esc did not cancel", s)
		}
	}
}

// TestFeaturesSetKeepsUnknownNames verifies flag-given features pass through
// untouched so unknown names reach the plugin runner.
func TestFeaturesSetKeepsUnknownNames(t *testing.T) {
	opts := testOptions(t)
	opts.FeaturesSet = true
	opts.Features = []string{"foo", "eslint"}

	sel := newModel(opts).toSelection()
	if want := []string{"foo", "eslint"}; !reflect.DeepEqual(sel.Features, want) {
		t.Errorf("Features = %v, want %v", sel.Features, want)
	}
}
