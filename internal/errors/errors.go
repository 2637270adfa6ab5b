// Package errors defines the typed failure codes used across the scaffolder.
// Messages are the human-readable causes shown to the user; codes let
// callers and tests branch without matching on message text.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

const (
	EUsage Code = "E_USAGE"

	// File patching
	EIO             Code = "E_IO"
	EFileNotFound   Code = "E_FILE_NOT_FOUND"
	ESearchNotFound Code = "E_SEARCH_NOT_FOUND"

	// Plugin application
	EPluginNotFound Code = "E_PLUGIN_NOT_FOUND"
	EPluginFailed   Code = "E_PLUGIN_FAILED"

	// Driver
	EInvalidManifest  Code = "E_INVALID_MANIFEST"
	ETemplateNotFound Code = "E_TEMPLATE_NOT_FOUND"
)

// Error carries a code, a human-readable message and an optional cause.
type Error struct {
	Cause error
	Code  Code
	Msg   string
}

// Error returns the message only, so failure reports read as plain causes.
func (e *Error) Error() string {
	return e.Msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// Newf is New with a format string.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error wrapping err. An empty msg reuses err's message.
func Wrap(code Code, msg string, err error) error {
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return &Error{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the code from err, or "" if err is not (and does not wrap) an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// ExitCode returns 0 for nil, 2 for E_USAGE and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes err to w, prefixed with its code when it has one.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	if code := GetCode(err); code != "" {
		fmt.Fprintf(w, "error_code: %s\n", code)
	}
	fmt.Fprintln(w, err.Error())
}
