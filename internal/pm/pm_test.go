package pm

import (
	"reflect"
	"testing"
)

// TestDetectDefaultsToNpm verifies npm is used when nothing identifies a manager.
func TestDetectDefaultsToNpm(t *testing.T) {
	t.Setenv(UserAgentEnv, "")
	if got := Detect("").Name(); got != "npm" {
		t.Errorf("Detect() = %q, want npm", got)
	}
}

// TestDetectUserAgent verifies the invoking manager is picked from the environment.
func TestDetectUserAgent(t *testing.T) {
	t.Setenv(UserAgentEnv, "pnpm/9.12.0 npm/? node/v22.11.0 linux x64")
	if got := Detect("").Name(); got != "pnpm" {
		t.Errorf("Detect() = %q, want pnpm", got)
	}
}

// TestDetectPreferredWins verifies a configured manager beats the user agent.
func TestDetectPreferredWins(t *testing.T) {
	t.Setenv(UserAgentEnv, "pnpm/9.12.0 npm/? node/v22.11.0 linux x64")
	if got := Detect("bun").Name(); got != "bun" {
		t.Errorf("Detect(bun) = %q", got)
	}
	if got := Detect("cargo").Name(); got != "pnpm" {
		t.Errorf("Detect(cargo) = %q, want pnpm", got)
	}
}

func TestFromUserAgent(t *testing.T) {
	tests := map[string]string{
		"npm/10.9.0 node/v22.11.0 darwin arm64": "npm",
		"yarn/1.22.22 npm/? node/v20.19.0":      "yarn",
		"bun/1.1.38 npm/? node/v22.6.0":         "bun",
	}
	for ua, want := range tests {
		m, ok := FromUserAgent(ua)
		if !ok || m.Name() != want {
			t.Errorf("FromUserAgent(%q) = %v, %v; want %s", ua, m, ok, want)
		}
	}
	for _, ua := range []string{"", "deno/2.0.0"} {
		if _, ok := FromUserAgent(ua); ok {
			t.Errorf("FromUserAgent(%q) ok = true", ua)
		}
	}
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name, install, dev string
	}{
		{"npm", "npm install", "npm run dev"},
		{"pnpm", "pnpm install", "pnpm run dev"},
		{"yarn", "yarn", "yarn dev"},
		{"bun", "bun install", "bun run dev"},
	}
	for _, tt := range tests {
		m, ok := Lookup(tt.name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.name)
		}
		if got := m.InstallCommand(); got != tt.install {
			t.Errorf("%s install = %q, want %q", tt.name, got, tt.install)
		}
		if got := m.RunCommand("dev"); got != tt.dev {
			t.Errorf("%s run = %q, want %q", tt.name, got, tt.dev)
		}
	}
	if want := []string{"npm", "pnpm", "yarn", "bun"}; !reflect.DeepEqual(Names(), want) {
		t.Errorf("Names() = %v", Names())
	}
}

func TestCheckNode(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"v22.12.0", true},
		{"v24.1.0", true},
		{"v20.19.0\n", true},
		{"v20.18.1", false},
		{"v22.11.0", false},
		{"v18.20.4", false},
	}
	for _, tt := range tests {
		v, err := ParseNodeVersion(tt.version)
		if err != nil {
			t.Fatalf("ParseNodeVersion(%q) error = %v", tt.version, err)
		}
		if err := CheckNode(v, RequiredNode); (err == nil) != tt.ok {
			t.Errorf("CheckNode(%s) error = %v, want ok = %v", v, err, tt.ok)
		}
	}
}

func TestParseNodeVersionInvalid(t *testing.T) {
	if _, err := ParseNodeVersion("not a version"); err == nil {
		t.Error("expected error")
	}
}
