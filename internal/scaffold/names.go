package scaffold

import (
	"regexp"
	"strings"
)

// DefaultTargetDir is used when no project name is given.
const DefaultTargetDir = "mini-vite-project"

var (
	validPackageName       = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)
	leadingDotOrUnderscore = regexp.MustCompile(`^[._]`)
	invalidPackageChars    = regexp.MustCompile(`[^a-z\d\-~]+`)
	whitespace             = regexp.MustCompile(`\s+`)
)

// FormatTargetDir trims surrounding whitespace and trailing slashes.
func FormatTargetDir(dir string) string {
	return strings.TrimRight(strings.TrimSpace(dir), "/")
}

// IsValidPackageName reports whether name is a valid npm package name,
// optionally scoped.
func IsValidPackageName(name string) bool {
	return validPackageName.MatchString(name)
}

// ToValidPackageName derives a valid package name from an arbitrary project name.
func ToValidPackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespace.ReplaceAllString(name, "-")
	name = leadingDotOrUnderscore.ReplaceAllString(name, "")
	return invalidPackageChars.ReplaceAllString(name, "-")
}
