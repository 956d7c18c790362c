// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package applets

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/multish"
)

// Echo prints its arguments back to the shell's output.
type Echo struct {
	out io.Writer
}

// NewEcho creates the echo applet writing to out.
func NewEcho(out io.Writer) *Echo {
	return &Echo{out: out}
}

func (e *Echo) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo [text]...",
		Short: "Print arguments to the output",
	}
	cmd.Flags().BoolP("no-newline", "n", false, "do not print the trailing newline")
	// Flags only before the text, so dashes inside it stay literal.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (e *Echo) Execute(m *multish.Matches) multish.Action {
	text := strings.Join(m.Args(), " ")
	if noNewline, _ := m.Command().Flags().GetBool("no-newline"); noNewline {
		fmt.Fprint(e.out, text)
	} else {
		fmt.Fprintln(e.out, text)
	}
	return multish.Continue
}

// Suggest completes dash-prefixed tokens only; everything else is text
// to print and must never be rewritten.
func (e *Echo) Suggest(tokens []string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	last := tokens[len(tokens)-1]
	if !strings.HasPrefix(last, "-") {
		return "", false
	}
	ranked := multish.Complete([]string{"--no-newline"}, last)
	if ranked == last {
		return "", false
	}
	parts := append(append([]string{}, tokens[:len(tokens)-1]...), ranked)
	return strings.Join(parts, " "), true
}
