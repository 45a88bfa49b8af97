// Package cli provides structured errors and exit codes for the command layer.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for scripted callers.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitBadInput = 3
	ExitNetwork  = 5
)

// Error is a categorized CLI error.
type Error struct {
	Code    int    `json:"exit_code"`
	Type    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewUsageError creates an error for invalid arguments or flags.
func NewUsageError(msg string) *Error {
	return &Error{Code: ExitUsage, Type: "invalid_args", Message: msg}
}

// NewBadInputError creates an error for malformed source files.
func NewBadInputError(msg string) *Error {
	return &Error{Code: ExitBadInput, Type: "bad_input", Message: msg}
}

// NewNetworkError creates an error for failed remote operations.
func NewNetworkError(msg string) *Error {
	return &Error{Code: ExitNetwork, Type: "network", Message: msg}
}

// ExitCode extracts the exit code from an error: ExitOK for nil,
// ExitInternal for errors without a category.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ExitInternal
}

// FormatError writes err to w, as structured JSON in JSON mode or as
// "error: <message>" in text mode.
func FormatError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		var ce *Error
		if !errors.As(err, &ce) {
			ce = &Error{Code: ExitInternal, Type: "internal", Message: err.Error()}
		}
		data, _ := json.Marshal(ce)
		_, _ = fmt.Fprintln(w, string(data))
		return
	}

	_, _ = fmt.Fprintf(w, "error: %v\n", err)
}
