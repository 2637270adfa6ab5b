package plugin

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/logger"
	"github.com/mini-vite/create/internal/manifest"
)

type fakePlugin struct {
	name  string
	err   error
	panics bool
	calls *[]string
}

func (f fakePlugin) Name() string        { return f.name }
func (f fakePlugin) Title() string       { return strings.ToUpper(f.name) }
func (f fakePlugin) Description() string { return "fake " + f.name }

func (f fakePlugin) Setup(_, _ string, _ *manifest.Manifest) error {
	if f.calls != nil {
		*f.calls = append(*f.calls, f.name)
	}
	if f.panics {
		panic("boom")
	}
	return f.err
}

func TestOrder(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"unocss", "eslint"}, []string{"eslint", "unocss"}},
		{[]string{"tailwind", "eslint"}, []string{"eslint", "tailwind"}},
		{[]string{"custom", "tailwind", "eslint"}, []string{"eslint", "tailwind", "custom"}},
		{[]string{"unocss", "tailwind"}, []string{"unocss", "tailwind"}},
		{nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			in := append([]string(nil), tt.in...)
			got := Order(in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Order(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !reflect.DeepEqual(in, tt.in) {
				t.Errorf("input modified: %v", in)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	if Priority("eslint") != 1 || Priority("tailwind") != 2 || Priority("unocss") != 2 {
		t.Error("unexpected built-in priorities")
	}
	if got := Priority("anything"); got != defaultPriority {
		t.Errorf("Priority(anything) = %d, want %d", got, defaultPriority)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	if _, err := NewRegistry(fakePlugin{name: "a"}, fakePlugin{name: "a"}); err == nil {
		t.Error("expected duplicate name error")
	}
	if _, err := NewRegistry(fakePlugin{name: ""}); err == nil {
		t.Error("expected empty name error")
	}
}

func TestBuiltinChoices(t *testing.T) {
	r := Builtin()

	if got, want := r.Names(), []string{"eslint", "tailwind", "unocss"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, c := range r.Choices() {
		if c.Title == "" || c.Description == "" {
			t.Errorf("choice %q has empty metadata", c.Name)
		}
	}
	if !IsCSSFramework("tailwind") || !IsCSSFramework("unocss") || IsCSSFramework("eslint") {
		t.Error("IsCSSFramework mismatch")
	}
}

// TestApplyRunsInPriorityOrder verifies selection order does not decide execution order.
func TestApplyRunsInPriorityOrder(t *testing.T) {
	var calls []string
	reg, err := NewRegistry(
		fakePlugin{name: "unocss", calls: &calls},
		fakePlugin{name: "eslint", calls: &calls},
	)
	if err != nil {
		t.Fatal(err)
	}

	res := (&Runner{Registry: reg}).Apply([]string{"unocss", "eslint"}, t.TempDir(), "vue-ts", manifest.New())

	want := []string{"eslint", "unocss"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if !reflect.DeepEqual(res.Succeeded, want) {
		t.Errorf("Succeeded = %v, want %v", res.Succeeded, want)
	}
	if !res.OK() {
		t.Errorf("Failed = %v", res.Failed)
	}
}

func TestApplyUnknownPlugin(t *testing.T) {
	res := (&Runner{Registry: Builtin()}).Apply([]string{"foo"}, t.TempDir(), "vue-ts", manifest.New())

	if len(res.Succeeded) != 0 {
		t.Errorf("Succeeded = %v", res.Succeeded)
	}
	if len(res.Failed) != 1 {
		t.Fatalf("Failed = %v", res.Failed)
	}
	f := res.Failed[0]
	if f.Name != "foo" || f.Cause() != "Plugin not found" {
		t.Errorf("failure = %q: %q", f.Name, f.Cause())
	}
	if !errors.Is(f.Err, errors.EPluginNotFound) {
		t.Errorf("code = %s", errors.GetCode(f.Err))
	}
}

// TestApplyContinuesAfterFailure verifies a failing or panicking plugin does
// not stop the rest.
func TestApplyContinuesAfterFailure(t *testing.T) {
	var calls []string
	reg, _ := NewRegistry(
		fakePlugin{name: "eslint", err: errors.New(errors.EPluginFailed, "broken"), calls: &calls},
		fakePlugin{name: "tailwind", panics: true, calls: &calls},
		fakePlugin{name: "extra", calls: &calls},
	)

	var started []string
	done := map[string]error{}
	r := &Runner{
		Registry: reg,
		OnStart:  func(p Plugin) { started = append(started, p.Name()) },
		OnDone:   func(name string, err error) { done[name] = err },
	}
	res := r.Apply([]string{"extra", "tailwind", "eslint"}, t.TempDir(), "react", manifest.New())

	if want := []string{"eslint", "tailwind", "extra"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if !reflect.DeepEqual(started, calls) {
		t.Errorf("OnStart = %v", started)
	}
	if !reflect.DeepEqual(res.Succeeded, []string{"extra"}) {
		t.Errorf("Succeeded = %v", res.Succeeded)
	}
	if len(res.Failed) != 2 {
		t.Fatalf("Failed = %v", res.Failed)
	}
	if res.Failed[0].Cause() != "broken" {
		t.Errorf("eslint cause = %q", res.Failed[0].Cause())
	}
	if !errors.Is(res.Failed[1].Err, errors.EPluginFailed) || !strings.Contains(res.Failed[1].Cause(), "boom") {
		t.Errorf("panic failure = %v", res.Failed[1].Err)
	}
	if done["extra"] != nil || done["eslint"] == nil || done["tailwind"] == nil {
		t.Errorf("OnDone = %v", done)
	}
}

func TestApplyLogsSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Registry: Builtin(), Log: logger.NewWriter(&buf)}
	r.Apply([]string{"eslint", "nope"}, t.TempDir(), "vue", manifest.New())

	out := buf.String()
	for _, want := range []string{"ESLint (Antfu) configured", "Successfully configured 1 plugin(s)", "Failed to configure 1 plugin(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

// TestApplyBuiltinIdempotent verifies applying the same selection twice yields
// the same files and manifest as applying it once.
func TestApplyBuiltinIdempotent(t *testing.T) {
	root := writeTree(t, map[string]string{
		"vite.config.ts": reactViteConfig,
		"src/index.css":  "body {}\n",
	})
	m := manifest.New()
	r := &Runner{Registry: Builtin()}

	r.Apply([]string{"tailwind", "eslint"}, root, "react-ts", m)
	config := read(t, root, "vite.config.ts")
	css := read(t, root, "src/index.css")
	before, _ := m.MarshalJSON()

	res := r.Apply([]string{"tailwind", "eslint"}, root, "react-ts", m)
	if !res.OK() {
		t.Fatalf("second apply failed: %v", res.Failed)
	}
	after, _ := m.MarshalJSON()

	if read(t, root, "vite.config.ts") != config || read(t, root, "src/index.css") != css {
		t.Error("files changed on second apply")
	}
	if !bytes.Equal(before, after) {
		t.Errorf("manifest changed:\n%s\n%s", before, after)
	}
}
