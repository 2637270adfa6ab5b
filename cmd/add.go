package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/detect"
	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/manifest"
	"github.com/mini-vite/create/internal/patch"
	"github.com/mini-vite/create/internal/plugin"
	"github.com/mini-vite/create/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <feature>...",
	Short: "Add features to an existing project",
	Long: `Apply one or more features to a project created earlier.
The template is detected from package.json unless --template is given.
Features already present are left as they are.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	flagAddDir      string
	flagAddTemplate string
	flagAddYes      bool
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&flagAddDir, "dir", ".", "project directory")
	addCmd.Flags().StringVar(&flagAddTemplate, "template", "", "template of the project (default: detected)")
	addCmd.Flags().BoolVarP(&flagAddYes, "yes", "y", false, "skip confirmation")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, err := filepath.Abs(flagAddDir)
	if err != nil {
		return err
	}
	pkgPath := filepath.Join(root, "package.json")

	var m *manifest.Manifest
	template := flagAddTemplate
	if template != "" {
		if m, err = manifest.Load(pkgPath); err != nil {
			return err
		}
	} else {
		p, err := detect.Inspect(root)
		if err != nil {
			return err
		}
		m, template = p.Manifest, p.Template()
	}

	css := 0
	for _, name := range args {
		if plugin.IsCSSFramework(name) {
			css++
		}
	}
	if css > 1 {
		return errors.New(errors.EUsage, "choose at most one CSS framework")
	}

	d := catalog.Describe(template)
	out.Println("Adding %s to %s %s", strings.Join(args, ", "), d.Label, out.Dim("("+root+")"))
	if !flagAddYes && !ui.IsCI() {
		ok, err := ui.Confirm("Apply these changes?")
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if !ok {
			return errors.New(errors.EUsage, "Operation cancelled")
		}
	}

	log := newLogger(cfg)
	defer log.Close()
	log.Printf("add [%s] to %s (%s)", strings.Join(args, ", "), root, template)

	before := m.Clone()
	runner := &plugin.Runner{Registry: plugin.Builtin(), Log: log}
	res := runner.Apply(args, root, template, m)

	if err := patch.WriteFile(pkgPath, m); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	for _, name := range res.Succeeded {
		out.Success("%s configured", name)
	}
	for _, f := range res.Failed {
		out.Error("%s: %s", f.Name, f.Cause())
	}

	if changes := manifest.Compare(before, m); len(changes) > 0 {
		fmt.Println()
		rows := make([][]string, len(changes))
		for i, c := range changes {
			version := c.New
			if c.Kind == manifest.Updated {
				version = c.Old + " → " + c.New
			}
			rows[i] = []string{c.Section, c.Key, version}
		}
		out.Table([]string{"SECTION", "NAME", "VALUE"}, rows)
		fmt.Println()
		out.Println("Run your package manager's install to fetch the new dependencies.")
	}

	if !res.OK() {
		return errors.Newf(errors.EPluginFailed, "%d feature(s) failed", len(res.Failed))
	}
	return nil
}
