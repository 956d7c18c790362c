// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package applets

import (
	"github.com/spf13/cobra"

	"github.com/jeranaias/multish"
)

// Quit leaves the interactive loop but lets the host process keep
// running whatever follows the session.
type Quit struct{}

// NewQuit creates the quit applet.
func NewQuit() *Quit {
	return &Quit{}
}

func (q *Quit) Command() *cobra.Command {
	return &cobra.Command{Use: "quit", Short: "Leave the shell"}
}

func (q *Quit) Execute(*multish.Matches) multish.Action {
	return multish.Break
}

func (q *Quit) Suggest([]string) (string, bool) {
	return "", false
}

// Exit leaves the interactive loop and asks the host process to
// terminate.
type Exit struct{}

// NewExit creates the exit applet.
func NewExit() *Exit {
	return &Exit{}
}

func (e *Exit) Command() *cobra.Command {
	return &cobra.Command{Use: "exit", Short: "Exit the shell process"}
}

func (e *Exit) Execute(*multish.Matches) multish.Action {
	return multish.Exit
}

func (e *Exit) Suggest([]string) (string, bool) {
	return "", false
}
