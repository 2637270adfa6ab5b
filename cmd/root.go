// Package cmd implements the create-mini-vite CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/config"
	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/logger"
	"github.com/mini-vite/create/internal/ui"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(version, commit, date string) {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"create-mini-vite %s (commit %s, built %s)\n", version, commit, date,
	))
	rootCmd.Version = version
	appVersion = version
}

// appVersion is recorded in scaffold logs.
var appVersion = "dev"

var out = ui.NewOutput()

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "create-mini-vite [project-dir] [template]",
	Short: "Scaffold a Vite project",
	Long: `create-mini-vite scaffolds a Vue or React project with optional
ESLint, Tailwind CSS or UnoCSS setup.

Examples:
  create-mini-vite                              interactive wizard
  create-mini-vite my-app react-ts              skip name and template prompts
  create-mini-vite my-app -t vue --css tailwind --features eslint --yes
  create-mini-vite add unocss                   add a feature to an existing project
  create-mini-vite list                         show templates and features
  create-mini-vite logs                         show the last scaffold log`,
	Args:          cobra.MaximumNArgs(2),
	RunE:          runCreate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if flagVerbose {
		errors.Print(os.Stderr, err)
	} else {
		out.Error("%s", err)
	}
	os.Exit(errors.ExitCode(err))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "echo the scaffold log to stderr")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath())
}

func logDir(cfg *config.Config) string {
	if cfg.LogDir != "" {
		return cfg.LogDir
	}
	return logger.DefaultDir()
}

// newLogger opens a scaffold log, echoed to stderr with --verbose.
// Failing to create the log file is not fatal.
func newLogger(cfg *config.Config) *logger.Logger {
	var echo io.Writer
	if flagVerbose {
		echo = os.Stderr
	}
	log, err := logger.New(logDir(cfg), echo)
	if err != nil {
		out.Warning("scaffold log disabled: %s", err)
		if echo != nil {
			return logger.NewWriter(echo)
		}
		return logger.NewDiscard()
	}
	return log
}

// loadCatalog returns the catalog, overridden by <templates_dir>/catalog.yaml when present.
func loadCatalog(dir string) (*catalog.Catalog, error) {
	opts := catalog.LoadOptions{}
	if dir != "" {
		opts.LocalOverride = filepath.Join(dir, "catalog.yaml")
	}
	cat, err := catalog.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// templatesDir returns the --templates-dir flag value, else the configured one.
func templatesDir(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.TemplatesDir
}
