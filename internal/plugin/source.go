package plugin

import (
	"regexp"
	"strings"
)

var (
	importLine = regexp.MustCompile(`^import[\s{*'"]`)

	// Imports with a module specifier on the same line are complete.
	importSpecifier = regexp.MustCompile(`^import\s*['"]|\bfrom\s*['"]`)

	// First non-empty array literal bound to a plugins key. Nested brackets are not supported.
	pluginsArray = regexp.MustCompile(`plugins:\s*\[([^\]]+)\]`)
)

// insertAfterLastImport inserts stmt (newline-terminated) after the last
// top-level import statement of src, or at the top when there is none.
// A multi-line named import is treated as ending at its closing brace.
func insertAfterLastImport(src, stmt string) string {
	lines := strings.SplitAfter(src, "\n")

	end := -1
	offset := 0
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !importLine.MatchString(line) {
			offset += len(line)
			continue
		}
		stmtEnd := offset + len(line)
		if strings.Contains(line, "{") && !strings.Contains(line, "}") && !importSpecifier.MatchString(line) {
			for i+1 < len(lines) {
				i++
				offset += len(line)
				line = lines[i]
				stmtEnd = offset + len(line)
				if strings.Contains(line, "}") {
					break
				}
			}
		}
		end = stmtEnd
		offset += len(line)
	}

	if end < 0 {
		return stmt + src
	}
	if !strings.HasSuffix(src[:end], "\n") {
		return src[:end] + "\n" + stmt + src[end:]
	}
	return src[:end] + stmt + src[end:]
}

// appendToPluginsArray appends call as the last element of the first
// `plugins: [...]` literal. src is returned unchanged when there is none.
func appendToPluginsArray(src, call string) string {
	loc := pluginsArray.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}

	inner := src[loc[2]:loc[3]]
	trimmed := strings.TrimRight(inner, " \t\r\n")
	tail := inner[len(trimmed):]

	var replaced string
	switch {
	case strings.TrimSpace(trimmed) == "":
		replaced = call
	case strings.HasSuffix(trimmed, ","):
		replaced = trimmed + " " + call + "," + tail
	default:
		replaced = trimmed + ", " + call + tail
	}
	return src[:loc[2]] + replaced + src[loc[3]:]
}
