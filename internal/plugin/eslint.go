package plugin

import (
	"path/filepath"

	"github.com/mini-vite/create/internal/manifest"
	"github.com/mini-vite/create/internal/patch"
)

const (
	eslintConfigFile = "eslint.config.mjs"
	eslintConfigKey  = "@antfu/eslint-config"
)

// eslintConfig is a flat config; antfu detects TypeScript, React and Vue itself.
const eslintConfig = `import antfu from '@antfu/eslint-config'

export default antfu()
`

// ESLint adds @antfu/eslint-config with lint scripts. It does not depend on the template.
type ESLint struct{}

func (ESLint) Name() string        { return "eslint" }
func (ESLint) Title() string       { return "ESLint (Antfu)" }
func (ESLint) Description() string { return "Code quality and linting with @antfu/eslint-config" }

func (ESLint) Setup(root, _ string, m *manifest.Manifest) error {
	manifest.MergeDependencies(m, manifest.DevDependencies, map[string]string{
		"eslint":        "^9.39.1",
		eslintConfigKey: "^6.2.0",
	})
	manifest.MergeScripts(m,
		manifest.Entry{Key: "lint", Value: "eslint ."},
		manifest.Entry{Key: "lint:fix", Value: "eslint . --fix"},
	)

	path := filepath.Join(root, eslintConfigFile)
	present, err := patch.Contains(path, eslintConfigKey)
	if err != nil {
		return failed(err, "Failed to read %s", eslintConfigFile)
	}
	if present {
		return nil
	}
	if err := patch.WriteFile(path, eslintConfig); err != nil {
		return failed(err, "Failed to create %s", eslintConfigFile)
	}
	return nil
}
