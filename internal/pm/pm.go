// Package pm knows the node package managers a generated project can be
// driven with. It never installs anything; it only names the commands to
// print as next steps. Use Detect() to pick the manager the user invoked us with.
package pm

import (
	"os"
	"strings"
)

// UserAgentEnv is set by npm, pnpm, yarn and bun when they run a package binary,
// e.g. "pnpm/9.12.0 npm/? node/v22.11.0 linux x64".
const UserAgentEnv = "npm_config_user_agent"

// PackageManager names the commands of one package manager.
type PackageManager interface {
	// Name returns "npm", "pnpm", "yarn" or "bun".
	Name() string
	// InstallCommand returns the command that installs a project's dependencies.
	InstallCommand() string
	// RunCommand returns the command that runs a package.json script.
	RunCommand(script string) string
}

var managers = []PackageManager{&NpmManager{}, &PnpmManager{}, &YarnManager{}, &BunManager{}}

// Lookup returns the manager called name.
func Lookup(name string) (PackageManager, bool) {
	for _, m := range managers {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Names returns every known manager name.
func Names() []string {
	names := make([]string, len(managers))
	for i, m := range managers {
		names[i] = m.Name()
	}
	return names
}

// FromUserAgent returns the manager named by the first token of a
// npm_config_user_agent value.
func FromUserAgent(ua string) (PackageManager, bool) {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return nil, false
	}
	name, _, _ := strings.Cut(fields[0], "/")
	return Lookup(name)
}

// Detect returns the preferred manager when it is known, otherwise the one
// from the user agent, otherwise npm.
func Detect(preferred string) PackageManager {
	if m, ok := Lookup(preferred); ok {
		return m
	}
	if m, ok := FromUserAgent(os.Getenv(UserAgentEnv)); ok {
		return m
	}
	return &NpmManager{}
}
