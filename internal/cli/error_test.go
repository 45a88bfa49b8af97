package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("plain"), ExitInternal},
		{NewUsageError("bad flag"), ExitUsage},
		{NewBadInputError("orphan line"), ExitBadInput},
		{NewNetworkError("timeout"), ExitNetwork},
		{fmt.Errorf("wrapped: %w", NewBadInputError("x")), ExitBadInput},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestFormatErrorText(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, NewUsageError("bad flag"), false)
	if buf.String() != "error: bad flag\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, NewBadInputError("orphan line"), true)
	out := buf.String()
	for _, want := range []string{`"exit_code":3`, `"error":"bad_input"`, `"message":"orphan line"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s: %s", want, out)
		}
	}
}

func TestFormatErrorJSONPlainError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, errors.New("boom"), true)
	if !strings.Contains(buf.String(), `"exit_code":1`) {
		t.Errorf("got %s", buf.String())
	}
}

func TestFormatErrorNil(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, nil, false)
	if buf.Len() != 0 {
		t.Errorf("got %q, want no output", buf.String())
	}
}
