package ui

import (
	"os"

	"github.com/charmbracelet/huh"
)

// IsCI reports whether we run unattended, where prompts would block.
func IsCI() bool {
	return isTruthy(os.Getenv("CI")) ||
		isTruthy(os.Getenv("MINI_VITE_CI")) ||
		isTruthy(os.Getenv("GITHUB_ACTIONS")) ||
		isTruthy(os.Getenv("GITLAB_CI"))
}

func isTruthy(v string) bool {
	return v != "" && v != "false" && v != "0"
}

// Confirm prompts for a yes/no answer.
func Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	return confirmed, err
}

// Option is one entry of a Select prompt.
type Option struct {
	Label string
	Value string
}

// Select prompts for one of options and returns its value.
func Select(title string, options []Option) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}
