// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package multish

import "github.com/spf13/cobra"

// Action is the signal a task returns to the loop driving it.
type Action int

const (
	// Continue keeps the current loop running.
	Continue Action = iota
	// Break stops the current loop, a soft exit.
	Break
	// Exit stops the current loop and requests a hard exit.
	Exit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Break:
		return "break"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Task is one applet under a multicall dispatcher: an argument grammar,
// an execution behavior, and a completion behavior.
//
// Command must build a fresh grammar on every call and must not carry
// state between calls; the dispatcher re-derives the merged grammar for
// each parse, so flag values never leak from one line to the next. Run
// functions set on the returned command are ignored: execution flows
// only through Execute.
//
// Suggest receives only the tokens that follow the task's own name on
// the input line, never tokens belonging to sibling tasks. It returns a
// replacement for that token slice and true, or false for no suggestion.
type Task interface {
	Command() *cobra.Command
	Execute(m *Matches) Action
	Suggest(tokens []string) (string, bool)
}
