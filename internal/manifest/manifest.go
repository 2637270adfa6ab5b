// Package manifest loads, merges and writes a project's package.json.
// Key order is preserved end to end so a rewritten file only differs where
// something was merged in.
package manifest

import (
	"fmt"
	"os"

	"github.com/mini-vite/create/internal/errors"
)

// Section names.
const (
	Dependencies    = "dependencies"
	DevDependencies = "devDependencies"
	Scripts         = "scripts"
)

// Manifest is an in-memory package.json.
type Manifest struct {
	root *Object
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{root: NewObject()}
}

// Parse decodes data, which must hold a JSON object.
func Parse(data []byte) (*Manifest, error) {
	root := NewObject()
	if err := root.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(errors.EInvalidManifest, fmt.Sprintf("parse manifest: %v", err), err)
	}
	return &Manifest{root: root}, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no package.json found at %s", path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Root returns the top-level object.
func (m *Manifest) Root() *Object { return m.root }

// Name returns the package name, or "" if unset.
func (m *Manifest) Name() string {
	s, _ := m.root.String("name")
	return s
}

// SetName sets the package name in place.
func (m *Manifest) SetName(name string) {
	m.root.Set("name", name)
}

// Section returns the named sub-mapping, or nil if it is absent or not an object.
func (m *Manifest) Section(name string) *Object {
	return m.root.Object(name)
}

// Lookup returns the string value of key in section.
func (m *Manifest) Lookup(section, key string) (string, bool) {
	sec := m.Section(section)
	if sec == nil {
		return "", false
	}
	return sec.String(key)
}

// Clone returns a deep copy.
func (m *Manifest) Clone() *Manifest {
	return &Manifest{root: m.root.Clone()}
}

// MarshalJSON implements json.Marshaler.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return m.root.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	root := NewObject()
	if err := root.UnmarshalJSON(data); err != nil {
		return err
	}
	m.root = root
	return nil
}

// section returns the named sub-mapping, creating (or replacing a
// non-object value with) an empty one.
func (m *Manifest) section(name string) *Object {
	if sec := m.root.Object(name); sec != nil {
		return sec
	}
	sec := NewObject()
	m.root.Set(name, sec)
	return sec
}
