// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error taxonomy for the dispatcher and the interactive loop.
//
// Tokenizing and grammar failures are recoverable: the line runner and
// the interactive session report them and keep going. Editor failures
// end the interactive call, but never the process. Nothing in this
// package panics on input data.

package multish

import (
	"errors"
	"fmt"
)

// ErrInvalidQuoting reports a line whose shell quoting could not be
// balanced. The text is stable; callers and scripts match on it.
var ErrInvalidQuoting = errors.New("error: Invalid quoting")

// GrammarError reports a line the merged grammar rejected: an unknown
// subcommand, a malformed option, a missing or invalid value. The
// message is the grammar parser's own human-readable description.
type GrammarError struct {
	Err error
}

func (e *GrammarError) Error() string {
	return e.Err.Error()
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

// EditorError reports an unrecoverable line editor failure, such as an
// I/O error on the terminal or end of input. It ends the interactive
// call that observed it.
type EditorError struct {
	Err error
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("line editor failed: %v", e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}

// IsQuotingError checks if an error is the invalid quoting error.
func IsQuotingError(err error) bool {
	return errors.Is(err, ErrInvalidQuoting)
}

// IsGrammarError checks if an error is a grammar rejection.
func IsGrammarError(err error) bool {
	var e *GrammarError
	return errors.As(err, &e)
}

// IsEditorError checks if an error is a line editor failure.
func IsEditorError(err error) bool {
	var e *EditorError
	return errors.As(err, &e)
}
