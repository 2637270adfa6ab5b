package ui

import (
	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs fn behind a spinner. In CI, or when disabled, fn runs bare.
func WithSpinner(title string, disabled bool, fn func() error) error {
	if disabled || IsCI() {
		return fn()
	}
	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() {
			actionErr = fn()
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
