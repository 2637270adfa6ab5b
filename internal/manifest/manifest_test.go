package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/patch"
)

const sampleJSON = `{
  "name": "vite-vue-starter",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vue-tsc -b && vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "vue": "^3.5.13"
  },
  "devDependencies": {
    "vite": "^6.0.5",
    "@vitejs/plugin-vue": "^5.2.1",
    "typescript": "~5.6.2"
  },
  "browserslist": ["> 1%", "last 2 versions"],
  "engines": { "node": ">=20", "npm": ">=10" },
  "sideEffects": false,
  "count": 1.50
}
`

func mustParse(t *testing.T, data string) *Manifest {
	t.Helper()
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return m
}

// TestParsePreservesKeyOrder verifies that top-level and nested key order survive parsing.
func TestParsePreservesKeyOrder(t *testing.T) {
	m := mustParse(t, sampleJSON)

	wantTop := []string{"name", "private", "version", "type", "scripts", "dependencies", "devDependencies", "browserslist", "engines", "sideEffects", "count"}
	if got := m.Root().Keys(); !reflect.DeepEqual(got, wantTop) {
		t.Errorf("top-level keys = %v, want %v", got, wantTop)
	}

	wantScripts := []string{"dev", "build", "preview"}
	if got := m.Section(Scripts).Keys(); !reflect.DeepEqual(got, wantScripts) {
		t.Errorf("scripts keys = %v, want %v", got, wantScripts)
	}
}

// TestWriteMatchesIndentedJSON verifies that writing via the patcher reproduces
// two-space JSON with a trailing newline, keeping "&&" and ">" unescaped.
func TestWriteMatchesIndentedJSON(t *testing.T) {
	m := mustParse(t, `{"name":"x","scripts":{"build":"tsc && vite build"},"browserslist":["> 1%"],"engines":{},"list":[]}`)
	path := filepath.Join(t.TempDir(), "package.json")

	if err := patch.WriteFile(path, m); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	want := `{
  "name": "x",
  "scripts": {
    "build": "tsc && vite build"
  },
  "browserslist": [
    "> 1%"
  ],
  "engines": {},
  "list": []
}
`
	data, _ := os.ReadFile(path)
	if string(data) != want {
		t.Errorf("written manifest =\n%s\nwant\n%s", data, want)
	}
}

// TestRoundTripKeepsNumbersVerbatim verifies that numbers keep their literal form.
func TestRoundTripKeepsNumbersVerbatim(t *testing.T) {
	m := mustParse(t, sampleJSON)
	out, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if !strings.Contains(string(out), `"count":1.50`) {
		t.Errorf("number literal changed: %s", out)
	}
}

// TestParseRejectsNonObject verifies that a top-level array is an invalid manifest.
func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`["not", "an", "object"]`))
	if errors.GetCode(err) != errors.EInvalidManifest {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.EInvalidManifest)
	}

	_, err = Parse([]byte(`{not json`))
	if err == nil {
		t.Error("Parse(invalid JSON) error = nil")
	}
}

// TestParseRejectsTrailingData verifies that content after the top-level
// object makes the manifest invalid, while trailing whitespace does not.
func TestParseRejectsTrailingData(t *testing.T) {
	for _, data := range []string{`{"a":1} garbage`, `{"a":1}{"b":2}`, `{"a":1}]`} {
		_, err := Parse([]byte(data))
		if errors.GetCode(err) != errors.EInvalidManifest {
			t.Errorf("Parse(%q) code = %q, want %q", data, errors.GetCode(err), errors.EInvalidManifest)
		}
	}

	mustParse(t, "{\"a\":1}\n\n  ")
}

// TestLoad verifies loading from disk and the missing-file error.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	os.WriteFile(path, []byte(sampleJSON), 0o644)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Name() != "vite-vue-starter" {
		t.Errorf("Name() = %q", m.Name())
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

// TestSetNameKeepsPosition verifies that renaming does not move the key.
func TestSetNameKeepsPosition(t *testing.T) {
	m := mustParse(t, sampleJSON)
	m.SetName("my-app")

	if m.Name() != "my-app" {
		t.Errorf("Name() = %q, want %q", m.Name(), "my-app")
	}
	if m.Root().Keys()[0] != "name" {
		t.Errorf("first key = %q, want name", m.Root().Keys()[0])
	}
}

// TestSetNameOnEmptyManifest verifies that name is added when missing.
func TestSetNameOnEmptyManifest(t *testing.T) {
	m := New()
	m.SetName("fresh")
	if got := m.Root().Keys(); !reflect.DeepEqual(got, []string{"name"}) {
		t.Errorf("keys = %v", got)
	}
}

// TestCloneIsDeep verifies that mutating a clone leaves the original alone.
func TestCloneIsDeep(t *testing.T) {
	m := mustParse(t, sampleJSON)
	c := m.Clone()

	MergeScripts(c, Entry{"lint", "eslint ."})
	c.Section(Dependencies).Set("vue", "^4.0.0")

	if _, ok := m.Lookup(Scripts, "lint"); ok {
		t.Error("original scripts gained lint")
	}
	if v, _ := m.Lookup(Dependencies, "vue"); v != "^3.5.13" {
		t.Errorf("original vue = %q", v)
	}
}

// TestObjectDelete verifies key removal keeps remaining order.
func TestObjectDelete(t *testing.T) {
	o := NewObject()
	o.Set("a", "1")
	o.Set("b", "2")
	o.Set("c", "3")
	o.Delete("b")
	o.Delete("missing")

	if got := o.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("keys = %v", got)
	}
}

// TestDuplicateKeysLastValueWins verifies JSON.parse-compatible duplicate handling.
func TestDuplicateKeysLastValueWins(t *testing.T) {
	m := mustParse(t, `{"a":"1","b":"2","a":"3"}`)
	if got := m.Root().Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("keys = %v", got)
	}
	if v, _ := m.Root().String("a"); v != "3" {
		t.Errorf("a = %q, want 3", v)
	}
}
