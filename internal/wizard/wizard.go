// Package wizard implements the interactive Bubble Tea questionnaire.
// The wizard walks through four stages: project and package name, template,
// features with an optional CSS framework, and a final confirmation screen.
// Stages already decided by arguments or flags are skipped. When Options.Yes
// is true the TUI is skipped entirely and Run returns defaults.
package wizard

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mini-vite/create/internal/catalog"
	"github.com/mini-vite/create/internal/errors"
	"github.com/mini-vite/create/internal/plugin"
	"github.com/mini-vite/create/internal/scaffold"
)

// ErrCancelled is returned when the user quits the wizard.
var ErrCancelled = errors.New(errors.EUsage, "Operation cancelled")

// Options controls wizard behaviour.
type Options struct {
	Catalog *catalog.Catalog
	// Plugins are offered as features; CSS frameworks among them become a single choice.
	Plugins []plugin.Choice

	// TargetDir pre-fills the project name. The name stage is skipped when
	// it is set and its base name is a valid package name.
	TargetDir string
	// Template pre-selects a variant. The template stage is skipped when it is in the catalog.
	Template string
	// Features and CSS pre-select choices. CSS is a plugin name or "" for none.
	Features []string
	CSS      string
	// FeaturesSet skips the features stage.
	FeaturesSet bool

	// Yes skips the TUI and returns defaults immediately.
	Yes bool
}

// Run shows the interactive wizard and returns the user's selection.
func Run(opts Options) (*scaffold.Selection, error) {
	if opts.Yes {
		return defaultSelection(opts), nil
	}

	model := newModel(opts)
	if model.stage == stageDone {
		return model.toSelection(), nil
	}
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard: %w", err)
	}
	result := final.(wizardModel)
	if result.cancelled {
		return nil, ErrCancelled
	}
	return result.toSelection(), nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = dimStyle
)

type stage int

const (
	stageName     stage = iota // project and package name
	stageTemplate              // framework variant
	stageFeatures              // checkbox features and CSS framework
	stageConfirm
	stageDone // nothing left to ask
)

type checkItem struct {
	name    string
	title   string
	desc    string
	checked bool
}

type variantItem struct {
	id        string
	framework string
	display   string
	color     string
}

type wizardModel struct {
	opts       Options
	errMsg     string
	nameInput  textinput.Model
	pkgInput   textinput.Model
	variants   []variantItem
	features   []checkItem
	css        []checkItem // radio group; index 0 is "None"
	stage      stage
	pkgTouched bool
	activeIn   int
	cursor     int
	cancelled  bool
	confirmed  bool
}

func newModel(opts Options) wizardModel {
	target := scaffold.FormatTargetDir(opts.TargetDir)
	if target == "" {
		target = scaffold.DefaultTargetDir
	}

	ni := textinput.New()
	ni.Placeholder = scaffold.DefaultTargetDir
	ni.SetValue(target)
	ni.Focus()
	ni.Width = 40

	pi := textinput.New()
	pi.Placeholder = "package-name"
	pi.Width = 40

	m := wizardModel{
		opts:      opts,
		nameInput: ni,
		pkgInput:  pi,
	}
	m.syncPackageName()

	if opts.Catalog != nil {
		for _, f := range opts.Catalog.Frameworks {
			for _, v := range f.Variants {
				m.variants = append(m.variants, variantItem{id: v.Name, framework: f.Display, display: v.Display, color: v.Color})
			}
		}
	}

	m.css = []checkItem{{name: "", title: "None", checked: opts.CSS == ""}}
	for _, c := range opts.Plugins {
		item := checkItem{name: c.Name, title: c.Title, desc: c.Description}
		if plugin.IsCSSFramework(c.Name) {
			item.checked = c.Name == opts.CSS
			m.css = append(m.css, item)
			continue
		}
		item.checked = slices.Contains(opts.Features, c.Name)
		m.features = append(m.features, item)
	}

	m.stage = stageName
	if opts.TargetDir != "" && scaffold.IsValidPackageName(baseName(target)) {
		m.stage = m.next(stageName)
	}
	if m.stage == stageConfirm {
		// Nothing was asked, so there is nothing to confirm.
		m.stage = stageDone
	}
	return m
}

// next returns the first stage after s that still needs an answer.
func (m wizardModel) next(s stage) stage {
	for s++; s < stageDone; s++ {
		switch s {
		case stageTemplate:
			if m.opts.Catalog != nil && m.opts.Catalog.Has(m.opts.Template) {
				continue
			}
		case stageFeatures:
			if m.opts.FeaturesSet {
				continue
			}
		}
		return s
	}
	return stageDone
}

// syncPackageName derives the package name from the project name until the
// user edits it.
func (m *wizardModel) syncPackageName() {
	if m.pkgTouched {
		return
	}
	m.pkgInput.SetValue(packageName(scaffold.FormatTargetDir(m.nameInput.Value())))
}

// baseName returns the last element of the absolute form of dir, so "."
// names the working directory.
func baseName(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return filepath.Base(dir)
}

// packageName derives a valid package name from a target directory.
func packageName(dir string) string {
	name := baseName(dir)
	if scaffold.IsValidPackageName(name) {
		return name
	}
	return scaffold.ToValidPackageName(name)
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	var cmd tea.Cmd
	if m.stage == stageName {
		m, cmd = m.updateInput(msg)
	}
	return m, cmd
}

func (m wizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancelled = true
		return m, tea.Quit
	}
	switch m.stage {
	case stageName:
		return m.handleNameKey(msg)
	case stageTemplate:
		return m.handleTemplateKey(msg)
	case stageFeatures:
		return m.handleFeaturesKey(msg)
	case stageConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m wizardModel) updateInput(msg tea.Msg) (wizardModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.activeIn == 0 {
		before := m.nameInput.Value()
		m.nameInput, cmd = m.nameInput.Update(msg)
		if m.nameInput.Value() != before {
			m.syncPackageName()
		}
	} else {
		before := m.pkgInput.Value()
		m.pkgInput, cmd = m.pkgInput.Update(msg)
		if m.pkgInput.Value() != before {
			m.pkgTouched = true
		}
	}
	return m, cmd
}

func (m wizardModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelled = true
		return m, tea.Quit
	case "tab", "down", "up":
		m.activeIn = 1 - m.activeIn
		if m.activeIn == 0 {
			m.nameInput.Focus()
			m.pkgInput.Blur()
		} else {
			m.pkgInput.Focus()
			m.nameInput.Blur()
		}
		return m, textinput.Blink
	case "enter":
		if err := m.validateNames(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m.advance()
	}
	return m.updateInput(msg)
}

func (m wizardModel) handleTemplateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.variants) == 0 {
			m.errMsg = "no templates available"
			return m, nil
		}
		m.opts.Template = m.variants[m.cursor].id
		m.cursor = 0
		return m.advance()
	}
	return m, nil
}

func (m wizardModel) handleFeaturesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.features) + len(m.css)
	switch msg.String() {
	case "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < total-1 {
			m.cursor++
		}
	case " ":
		m.toggleCursor()
	case "enter":
		return m.advance()
	}
	return m, nil
}

func (m wizardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n", "N":
		m.cancelled = true
		return m, tea.Quit
	case "enter", "y", "Y":
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m wizardModel) advance() (tea.Model, tea.Cmd) {
	m.stage = m.next(m.stage)
	if m.stage == stageDone {
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

// toggleCursor flips a feature checkbox, or selects a CSS framework
// exclusively.
func (m *wizardModel) toggleCursor() {
	if m.cursor < len(m.features) {
		m.features[m.cursor].checked = !m.features[m.cursor].checked
		return
	}
	sel := m.cursor - len(m.features)
	for i := range m.css {
		m.css[i].checked = i == sel
	}
}

func (m wizardModel) validateNames() error {
	if scaffold.FormatTargetDir(m.nameInput.Value()) == "" {
		return fmt.Errorf("project name is required")
	}
	if !scaffold.IsValidPackageName(m.pkgInput.Value()) {
		return fmt.Errorf("invalid package name")
	}
	return nil
}

func (m wizardModel) View() string {
	switch m.stage {
	case stageName:
		return m.viewName()
	case stageTemplate:
		return m.viewTemplate()
	case stageFeatures:
		return m.viewFeatures()
	case stageConfirm:
		return m.viewConfirm()
	}
	return ""
}

func header(sub string) string {
	return titleStyle.Render("  Mini Vite") + "  " + sub + "\n\n"
}

func (m wizardModel) viewName() string {
	var b strings.Builder
	b.WriteString(header("new project"))

	b.WriteString("  " + sectionStyle.Render("Project name") + "\n")
	b.WriteString("  " + m.nameInput.View() + "\n\n")

	b.WriteString("  " + sectionStyle.Render("Package name") + "\n")
	b.WriteString("  " + m.pkgInput.View() + "\n")
	b.WriteString(dimStyle.Render("  The name field of package.json") + "\n\n")

	if m.errMsg != "" {
		b.WriteString("  " + errorStyle.Render("✖ "+m.errMsg) + "\n\n")
	}

	b.WriteString(helpStyle.Render("  tab switch · enter next · esc quit"))
	return b.String()
}

func (m wizardModel) viewTemplate() string {
	var b strings.Builder
	b.WriteString(header("select a framework and variant"))

	last := ""
	for i, v := range m.variants {
		if v.framework != last {
			b.WriteString("  " + sectionStyle.Render("─── "+v.framework+" ───") + "\n")
			last = v.framework
		}
		cursor := "  "
		if i == m.cursor {
			cursor = focusStyle.Render(" ▶")
		}
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(v.color)).Render(v.display)
		b.WriteString(fmt.Sprintf("%s  %-20s %s\n", cursor, label, dimStyle.Render(v.id)))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("  " + errorStyle.Render("✖ "+m.errMsg) + "\n\n")
	}
	b.WriteString(helpStyle.Render("  ↑↓ move · enter select · esc quit"))
	return b.String()
}

func (m wizardModel) viewFeatures() string {
	var b strings.Builder
	b.WriteString(header("select additional features"))

	b.WriteString("  " + sectionStyle.Render("─── Features ───") + "\n")
	for i, f := range m.features {
		b.WriteString(m.renderItem(i, f, "○", "◉"))
	}
	b.WriteString("\n")

	b.WriteString("  " + sectionStyle.Render("─── CSS framework (optional) ───") + "\n")
	for i, c := range m.css {
		b.WriteString(m.renderItem(len(m.features)+i, c, "( )", "(•)"))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("  ↑↓ move · space toggle · enter next · esc quit"))
	return b.String()
}

func (m wizardModel) renderItem(idx int, item checkItem, off, on string) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = focusStyle.Render(" ▶")
	}
	check := off
	style := normalStyle
	if item.checked {
		check = selectedStyle.Render(on)
		style = selectedStyle
	}
	return fmt.Sprintf("%s %s  %-18s  %s\n",
		cursor, check,
		style.Render(item.title),
		dimStyle.Render(item.desc),
	)
}

func (m wizardModel) viewConfirm() string {
	sel := m.toSelection()

	var b strings.Builder
	b.WriteString(header("ready to scaffold"))
	b.WriteString(fmt.Sprintf("  Directory:  %s\n", focusStyle.Render(sel.TargetDir)))
	b.WriteString(fmt.Sprintf("  Package:    %s\n", focusStyle.Render(sel.PackageName)))
	b.WriteString(fmt.Sprintf("  Template:   %s\n", focusStyle.Render(catalog.Describe(sel.Template).Label)))
	if len(sel.Features) > 0 {
		b.WriteString("  Features:   " + strings.Join(sel.Features, ", ") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("  Press enter to create · n to cancel"))
	return b.String()
}

func (m wizardModel) toSelection() *scaffold.Selection {
	var features []string
	for _, f := range m.features {
		if f.checked {
			features = append(features, f.name)
		}
	}
	for _, c := range m.css {
		if c.checked && c.name != "" {
			features = append(features, c.name)
		}
	}
	if m.opts.FeaturesSet {
		features = selectedFeatures(m.opts)
	}

	return &scaffold.Selection{
		TargetDir:   scaffold.FormatTargetDir(m.nameInput.Value()),
		PackageName: m.pkgInput.Value(),
		Template:    m.opts.Template,
		Features:    features,
	}
}

func defaultSelection(opts Options) *scaffold.Selection {
	target := scaffold.FormatTargetDir(opts.TargetDir)
	if target == "" {
		target = scaffold.DefaultTargetDir
	}
	template := opts.Template
	if opts.Catalog != nil && !opts.Catalog.Has(template) {
		if ids := opts.Catalog.Templates(); len(ids) > 0 {
			template = ids[0]
		}
	}

	return &scaffold.Selection{
		TargetDir:   target,
		PackageName: packageName(target),
		Template:    template,
		Features:    selectedFeatures(opts),
	}
}

// selectedFeatures lists checkbox features first, then the CSS framework.
func selectedFeatures(opts Options) []string {
	var features []string
	for _, f := range opts.Features {
		if !plugin.IsCSSFramework(f) && !slices.Contains(features, f) {
			features = append(features, f)
		}
	}
	if opts.CSS != "" {
		features = append(features, opts.CSS)
	}
	return features
}
