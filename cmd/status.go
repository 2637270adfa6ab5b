package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/detect"
	"github.com/mini-vite/create/internal/manifest"
	"github.com/mini-vite/create/internal/pm"
)

var statusCmd = &cobra.Command{
	Use:   "status [project-dir]",
	Short: "Show the template and features of an existing project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root, err := filepath.Abs(argAt(args, 0))
	if err != nil {
		return err
	}

	p, err := detect.Inspect(root)
	if err != nil {
		return err
	}

	features := detect.Features(p.Manifest)
	featureList := "none"
	if len(features) > 0 {
		featureList = strings.Join(features, ", ")
	}

	fmt.Println()
	out.Field("Project", root)
	out.Field("Package", p.Manifest.Name())
	out.Field("Template", fmt.Sprintf("%s (%s)", p.Template(), catalog.Describe(p.Template()).Label))
	out.Field("Features", featureList)
	out.Field("PM", pm.Detect(cfg.PackageManager).Name())

	if res, err := manifest.Validate(p.Manifest); err == nil && !res.Valid {
		fmt.Println()
		for _, issue := range res.Issues {
			out.Warning("package.json: %s", issue)
		}
	}
	fmt.Println()
	return nil
}
