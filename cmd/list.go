package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/plugin"
	"github.com/mini-vite/create/internal/templates"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates and features",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var flagListTemplatesDir string

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&flagListTemplatesDir, "templates-dir", "", "directory with template-<name> trees")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := templatesDir(cfg, flagListTemplatesDir)
	cat, err := loadCatalog(dir)
	if err != nil {
		return err
	}
	src := templates.Source{Dir: dir}

	out.Title("Templates")
	var rows [][]string
	for _, f := range cat.Frameworks {
		for _, v := range f.Variants {
			status := ""
			if !src.Has(v.Name) {
				status = "missing"
			}
			rows = append(rows, []string{
				out.Color(f.Color, f.Display),
				out.Color(v.Color, v.Display),
				v.Name,
				status,
			})
		}
	}
	out.Table([]string{"FRAMEWORK", "VARIANT", "TEMPLATE", ""}, rows)
	fmt.Println()

	out.Title("Features")
	rows = rows[:0]
	for _, c := range plugin.Builtin().Choices() {
		kind := "feature"
		if plugin.IsCSSFramework(c.Name) {
			kind = "css"
		}
		rows = append(rows, []string{c.Name, c.Title, kind, c.Description})
	}
	out.Table([]string{"NAME", "TITLE", "KIND", "DESCRIPTION"}, rows)

	if extra := extraTemplates(cat, src); len(extra) > 0 {
		fmt.Println()
		out.Println("Templates on disk without a catalog entry: %s", strings.Join(extra, ", "))
	}
	return nil
}

// extraTemplates lists template trees the catalog does not offer.
func extraTemplates(cat *catalog.Catalog, src templates.Source) []string {
	var extra []string
	for _, id := range src.IDs() {
		if !cat.Has(id) {
			extra = append(extra, id)
		}
	}
	return extra
}
