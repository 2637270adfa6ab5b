package catalog

import "strings"

// UI is the UI-framework facet of a template.
type UI string

const (
	Vanilla UI = "vanilla"
	React   UI = "react"
	Vue     UI = "vue"
)

// Display returns the human-readable framework name.
func (u UI) Display() string {
	switch u {
	case React:
		return "React"
	case Vue:
		return "Vue"
	}
	return "Vanilla"
}

// typeScriptMarker marks statically-typed template identifiers.
const typeScriptMarker = "-ts"

// Descriptor holds the facets derived from a template identifier.
type Descriptor struct {
	ID         string
	Framework  UI
	Label      string // e.g. "React + TypeScript"
	TypeScript bool
}

// IsReact reports whether the template uses React.
func (d Descriptor) IsReact() bool { return d.Framework == React }

// IsVue reports whether the template uses Vue.
func (d Descriptor) IsVue() bool { return d.Framework == Vue }

// Language returns "typescript" or "javascript".
func (d Descriptor) Language() string {
	if d.TypeScript {
		return "typescript"
	}
	return "javascript"
}

// ScriptExt returns ".ts" or ".js".
func (d Descriptor) ScriptExt() string {
	if d.TypeScript {
		return ".ts"
	}
	return ".js"
}

// Describe derives the facets of a template identifier. React is checked
// before Vue, so an identifier naming both is React. Unknown identifiers
// describe as vanilla JavaScript.
func Describe(id string) Descriptor {
	d := Descriptor{ID: id, TypeScript: strings.Contains(id, typeScriptMarker)}

	switch {
	case strings.Contains(id, string(React)):
		d.Framework = React
	case strings.Contains(id, string(Vue)):
		d.Framework = Vue
	default:
		d.Framework = Vanilla
	}

	lang := "JavaScript"
	if d.TypeScript {
		lang = "TypeScript"
	}
	d.Label = d.Framework.Display() + " + " + lang
	return d
}
