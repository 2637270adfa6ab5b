package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mini-vite/create/internal/config"
	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/logger"
	"github.com/mini-vite/create/internal/plugin"
	"github.com/mini-vite/create/internal/pm"
	"github.com/mini-vite/create/internal/scaffold"
	"github.com/mini-vite/create/internal/templates"
	"github.com/mini-vite/create/internal/ui"
	"github.com/mini-vite/create/internal/wizard"
)

var (
	flagYes          bool
	flagOverwrite    bool
	flagTemplate     string
	flagFeatures     []string
	flagCSS          string
	flagTemplatesDir string
)

func init() {
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip prompts and use defaults")
	rootCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "remove existing files in a non-empty target directory")
	rootCmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "template: vue-ts, vue, react-ts or react")
	rootCmd.Flags().StringSliceVar(&flagFeatures, "features", nil, "comma-separated features, e.g. eslint")
	rootCmd.Flags().StringVar(&flagCSS, "css", "", "CSS framework: tailwind, unocss or none")
	rootCmd.Flags().StringVar(&flagTemplatesDir, "templates-dir", "", "directory with template-<name> trees overriding the built-in ones")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := templatesDir(cfg, flagTemplatesDir)
	cat, err := loadCatalog(dir)
	if err != nil {
		return err
	}
	registry := plugin.Builtin()

	opts := wizard.Options{
		Catalog: cat,
		Plugins: registry.Choices(),
		Yes:     flagYes || ui.IsCI(),
	}
	if len(args) > 0 {
		opts.TargetDir = scaffold.FormatTargetDir(args[0])
	}
	opts.Template = firstNonEmpty(flagTemplate, argAt(args, 1), cfg.Template)

	features, css := cfg.Features, cfg.CSS
	flags := cmd.Flags()
	if flags.Changed("features") {
		features = flagFeatures
	}
	if flags.Changed("css") {
		css = flagCSS
	}
	if css == config.CSSNone {
		css = ""
	}
	if css != "" && !plugin.IsCSSFramework(css) {
		return errors.Newf(errors.EUsage, "unknown CSS framework %q (valid: tailwind, unocss, none)", css)
	}
	opts.Features, opts.CSS = features, css
	opts.FeaturesSet = flags.Changed("features") || flags.Changed("css")

	sel, err := wizard.Run(opts)
	if err != nil {
		return err
	}

	src := templates.Source{Dir: dir}
	if !src.Has(sel.Template) {
		return errors.Newf(errors.ETemplateNotFound, "Template %q not found. Available templates: %s",
			sel.Template, strings.Join(src.IDs(), ", "))
	}

	sel.Overwrite = flagOverwrite
	if err := confirmOverwrite(sel, opts.Yes); err != nil {
		return err
	}

	log := newLogger(cfg)
	defer log.Close()
	log.Printf("create-mini-vite %s", appVersion)
	log.Printf("Template %s, features [%s]", sel.Template, strings.Join(sel.Features, ", "))
	checkNode(log)

	s := &scaffold.Scaffolder{
		Templates: src,
		Registry:  registry,
		Log:       log,
		Ignore:    cfg.Ignore,
	}

	root, _ := filepath.Abs(sel.TargetDir)
	fmt.Println()
	var res *scaffold.Result
	err = ui.WithSpinner(fmt.Sprintf("Scaffolding project in %s...", root), flagVerbose, func() error {
		var runErr error
		res, runErr = s.Run(sel)
		return runErr
	})
	if err != nil {
		return err
	}

	printResult(res, pm.Detect(cfg.PackageManager), log.LogPath())
	return nil
}

// confirmOverwrite asks before emptying a non-empty target, mirroring the
// Cancel / Remove existing files choice. Unattended runs need --overwrite.
func confirmOverwrite(sel *scaffold.Selection, unattended bool) error {
	if sel.Overwrite {
		return nil
	}
	empty, err := scaffold.IsEmpty(sel.TargetDir)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}
	if unattended {
		return errors.Newf(errors.EUsage, "Target directory %q is not empty (use --overwrite)", sel.TargetDir)
	}

	choice, err := ui.Select(
		fmt.Sprintf("Target directory %q is not empty. Please choose:", sel.TargetDir),
		[]ui.Option{
			{Label: "Cancel", Value: "no"},
			{Label: "Remove existing files", Value: "yes"},
		},
	)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	if choice != "yes" {
		return wizard.ErrCancelled
	}
	sel.Overwrite = true
	return nil
}

// checkNode logs a warning when the local Node.js is missing or too old.
// It never blocks scaffolding.
func checkNode(log *logger.Logger) {
	v, err := pm.NodeVersion()
	if err != nil {
		log.Printf("Node.js not found: %s", err)
		return
	}
	if err := pm.CheckNode(v, pm.RequiredNode); err != nil {
		out.Warning("%s; Vite needs Node.js %s", err, pm.RequiredNode)
		log.Printf("%s", err)
		return
	}
	log.Printf("Node.js %s", v)
}

func printResult(r *scaffold.Result, manager pm.PackageManager, logPath string) {
	for _, name := range r.Plugins.Succeeded {
		out.Success("%s configured", name)
	}
	for _, f := range r.Plugins.Failed {
		out.Error("%s: %s", f.Name, f.Cause())
	}

	fmt.Println()
	out.Success("Done. %s", out.Dim(fmt.Sprintf("(%s)", r.Duration.Round(time.Millisecond))))
	fmt.Println()
	out.Field("Project", r.Root)
	out.Field("Package", r.PackageName)
	if logPath != "" {
		out.Field("Log", logPath)
	}
	fmt.Println()

	out.Println("Now run:")
	fmt.Println()
	if cwd, err := os.Getwd(); err == nil && r.Root != cwd {
		rel, err := filepath.Rel(cwd, r.Root)
		if err != nil {
			rel = r.Root
		}
		out.Println("  cd %s", quoteIfSpaced(rel))
	}
	out.Println("  %s", manager.InstallCommand())
	out.Println("  %s", manager.RunCommand("dev"))
	fmt.Println()
}

func quoteIfSpaced(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
