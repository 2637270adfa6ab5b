package scaffold

import "testing"

func TestFormatTargetDir(t *testing.T) {
	tests := map[string]string{
		"my-app":    "my-app",
		"my-app/":   "my-app",
		"my-app///": "my-app",
		"  app  ":   "app",
		"":          "",
	}
	for in, want := range tests {
		if got := FormatTargetDir(in); got != want {
			t.Errorf("FormatTargetDir(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidPackageName(t *testing.T) {
	valid := []string{"my-app", "app", "@scope/pkg", "a.b_c~d", "123"}
	invalid := []string{"My-App", "my app", ".hidden", "_private", "@scope", "", "a/b"}

	for _, name := range valid {
		if !IsValidPackageName(name) {
			t.Errorf("IsValidPackageName(%q) = false", name)
		}
	}
	for _, name := range invalid {
		if IsValidPackageName(name) {
			t.Errorf("IsValidPackageName(%q) = true", name)
		}
	}
}

func TestToValidPackageName(t *testing.T) {
	tests := map[string]string{
		"My App":        "my-app",
		" .Hidden ":     "hidden",
		"_under":        "under",
		"hello@world!":  "hello-world-",
		"already-valid": "already-valid",
	}
	for in, want := range tests {
		got := ToValidPackageName(in)
		if got != want {
			t.Errorf("ToValidPackageName(%q) = %q, want %q", in, got, want)
		}
		if !IsValidPackageName(got) {
			t.Errorf("ToValidPackageName(%q) = %q is not valid", in, got)
		}
	}
}
