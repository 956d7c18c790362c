// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package multish

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestQuotingErrorTextIsStable(t *testing.T) {
	if got := ErrInvalidQuoting.Error(); got != "error: Invalid quoting" {
		t.Errorf("ErrInvalidQuoting = %q", got)
	}
	if !IsQuotingError(fmt.Errorf("wrapped: %w", ErrInvalidQuoting)) {
		t.Error("IsQuotingError should see through wrapping")
	}
}

func TestGrammarErrorWrapsParserMessage(t *testing.T) {
	cause := errors.New(`unknown command "deply" for "shell"`)
	err := &GrammarError{Err: cause}

	if err.Error() != cause.Error() {
		t.Errorf("GrammarError.Error() = %q, want parser message %q", err.Error(), cause.Error())
	}
	if !IsGrammarError(fmt.Errorf("run: %w", err)) {
		t.Error("IsGrammarError should see through wrapping")
	}
	if IsGrammarError(cause) {
		t.Error("a bare parser error is not a GrammarError")
	}
}

func TestEditorErrorUnwraps(t *testing.T) {
	err := &EditorError{Err: io.EOF}

	if !IsEditorError(err) {
		t.Error("IsEditorError(err) = false")
	}
	if !errors.Is(err, io.EOF) {
		t.Error("EditorError should unwrap to its cause")
	}
	if IsEditorError(io.EOF) {
		t.Error("a bare read error is not an EditorError")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Continue, "continue"},
		{Break, "break"},
		{Exit, "exit"},
		{Action(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
