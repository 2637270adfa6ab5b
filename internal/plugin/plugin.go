// Package plugin implements the optional feature installers and the runner
// that applies a selection of them to a freshly copied template.
//
// A plugin merges entries into the manifest and patches generated files.
// Every insertion is guarded by a contains-check so applying a plugin twice
// leaves the project as applying it once.
package plugin

import (
	"fmt"

	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/manifest"
)

// Plugin is one optional feature.
type Plugin interface {
	// Name is the unique machine identifier used for selection and ordering.
	Name() string
	// Title is the display name.
	Title() string
	// Description is a one-line summary for selection lists.
	Description() string
	// Setup applies the feature to the project at root, created from template.
	// It mutates m in place and returns an error it considers unrecoverable.
	Setup(root, template string, m *manifest.Manifest) error
}

// Choice is the presentable metadata of a plugin.
type Choice struct {
	Title       string
	Name        string
	Description string
}

// failed wraps a patch failure into a plugin failure with a descriptive message.
func failed(err error, format string, args ...any) error {
	return errors.Wrap(errors.EPluginFailed, fmt.Sprintf(format, args...)+": "+err.Error(), err)
}
