package plugin

import (
	"path/filepath"
	"strings"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/manifest"
	"github.com/mini-vite/create/internal/patch"
)

const (
	unoConfigFile   = "uno.config.js"
	unoVersion      = "^0.64.6"
	unoViteAnchor   = "from 'vite'"
	unoViteImport   = "\nimport UnoCSS from 'unocss/vite'"
	unoPluginAnchor = "plugins: ["
	unoPluginCall   = "\n    UnoCSS(),"
	unoEntryImport  = "import 'virtual:uno.css'"
)

const unoConfig = `import { defineConfig, presetUno, presetAttributify, presetIcons } from 'unocss'

export default defineConfig({
  presets: [
    presetUno(),
    presetAttributify(),
    presetIcons({
      scale: 1.2,
      warn: true,
    }),
  ],
})
`

// UnoCSS adds the UnoCSS engine with its Vite plugin and a config file.
type UnoCSS struct{}

func (UnoCSS) Name() string        { return "unocss" }
func (UnoCSS) Title() string       { return "UnoCSS" }
func (UnoCSS) Description() string { return "Instant on-demand atomic CSS engine" }

func (UnoCSS) Setup(root, template string, m *manifest.Manifest) error {
	d := catalog.Describe(template)

	deps := map[string]string{"unocss": unoVersion}
	if d.IsReact() {
		deps["@unocss/preset-react"] = unoVersion
	}
	manifest.MergeDependencies(m, manifest.DevDependencies, deps)

	configPath := filepath.Join(root, unoConfigFile)
	present, err := patch.Contains(configPath, "defineConfig")
	if err != nil {
		return failed(err, "Failed to read %s", unoConfigFile)
	}
	if !present {
		if err := patch.WriteFile(configPath, unoConfig); err != nil {
			return failed(err, "Failed to create %s", unoConfigFile)
		}
	}

	viteFile := "vite.config" + d.ScriptExt()
	vitePath := filepath.Join(root, viteFile)
	if patch.Exists(vitePath) {
		original, err := patch.ReadFile(vitePath)
		if err != nil {
			return failed(err, "Failed to read %s", viteFile)
		}

		// Each replacement is skipped when its anchor is missing.
		config := original
		if !strings.Contains(config, "unocss/vite") {
			config = strings.Replace(config, unoViteAnchor, unoViteAnchor+unoViteImport, 1)
		}
		if !strings.Contains(config, "UnoCSS()") {
			config = strings.Replace(config, unoPluginAnchor, unoPluginAnchor+unoPluginCall, 1)
		}
		if config != original {
			if err := patch.WriteFile(vitePath, config); err != nil {
				return failed(err, "Failed to update %s", viteFile)
			}
		}
	}

	mainFile := entryFile(d)
	mainPath := filepath.Join(root, filepath.FromSlash(mainFile))
	if !patch.Exists(mainPath) {
		return nil
	}
	present, err = patch.Contains(mainPath, unoEntryImport)
	if err != nil {
		return failed(err, "Failed to read %s", mainFile)
	}
	if present {
		return nil
	}
	if err := patch.Prepend(mainPath, unoEntryImport+"\n"); err != nil {
		return failed(err, "Failed to update %s", mainFile)
	}
	return nil
}

// entryFile returns the application entry point of a template:
// src/main.ts, src/main.tsx, src/main.js or src/main.jsx.
func entryFile(d catalog.Descriptor) string {
	name := "src/main" + d.ScriptExt()
	if d.IsReact() {
		name += "x"
	}
	return name
}
