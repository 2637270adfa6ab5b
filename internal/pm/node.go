package pm

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// RequiredNode is the Node.js range the generated Vite projects run on.
const RequiredNode = "^20.19.0 || >=22.12.0"

// NodeVersion returns the version of the node binary on PATH.
func NodeVersion() (*semver.Version, error) {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("node --version: %w", err)
	}
	return ParseNodeVersion(string(out))
}

// ParseNodeVersion parses `node --version` output such as "v22.11.0\n".
func ParseNodeVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parse node version %q: %w", strings.TrimSpace(s), err)
	}
	return v, nil
}

// CheckNode reports an error when v does not satisfy constraint.
func CheckNode(v *semver.Version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("node %s does not satisfy %s", v, constraint)
	}
	return nil
}
