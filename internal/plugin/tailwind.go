package plugin

import (
	"path/filepath"
	"strings"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/manifest"
	"github.com/mini-vite/create/internal/patch"
)

const (
	tailwindModule = "@tailwindcss/vite"
	tailwindImport = "import tailwindcss from '@tailwindcss/vite'\n"
	tailwindCall   = "tailwindcss()"
	tailwindCSS    = `@import "tailwindcss"`
)

// Tailwind adds Tailwind CSS v4 through its Vite plugin.
type Tailwind struct{}

func (Tailwind) Name() string        { return "tailwind" }
func (Tailwind) Title() string       { return "Tailwind CSS" }
func (Tailwind) Description() string { return "Utility-first CSS framework" }

func (Tailwind) Setup(root, template string, m *manifest.Manifest) error {
	d := catalog.Describe(template)

	manifest.MergeDependencies(m, manifest.DevDependencies, map[string]string{
		"tailwindcss":  "^4.1.0",
		tailwindModule: "^4.1.0",
	})

	configFile := "vite.config" + d.ScriptExt()
	configPath := filepath.Join(root, configFile)
	if patch.Exists(configPath) {
		original, err := patch.ReadFile(configPath)
		if err != nil {
			return failed(err, "Failed to read %s", configFile)
		}

		config := original
		if !strings.Contains(config, tailwindModule) {
			config = insertAfterLastImport(config, tailwindImport)
		}
		if !strings.Contains(config, tailwindCall) {
			config = appendToPluginsArray(config, tailwindCall)
		}
		if config != original {
			if err := patch.WriteFile(configPath, config); err != nil {
				return failed(err, "Failed to update %s", configFile)
			}
		}
	}

	cssFile := "src/index.css"
	if d.IsVue() {
		cssFile = "src/style.css"
	}
	cssPath := filepath.Join(root, filepath.FromSlash(cssFile))
	if !patch.Exists(cssPath) {
		return nil
	}
	present, err := patch.Contains(cssPath, tailwindCSS)
	if err != nil {
		return failed(err, "Failed to read %s", cssFile)
	}
	if present {
		return nil
	}
	if err := patch.Prepend(cssPath, tailwindCSS+";\n\n"); err != nil {
		return failed(err, "Failed to update %s", cssFile)
	}
	return nil
}
