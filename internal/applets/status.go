// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package applets

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/jeranaias/multish"
)

var statusHeading = lipgloss.NewStyle().Bold(true)

// Status reports the shell's version and runtime environment.
type Status struct {
	out     io.Writer
	version string
}

// NewStatus creates the status applet writing to out.
func NewStatus(out io.Writer, version string) *Status {
	return &Status{out: out, version: version}
}

func (s *Status) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show shell runtime information",
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text or json")
	return cmd
}

func (s *Status) Execute(m *multish.Matches) multish.Action {
	info := [][2]string{
		{"version", s.version},
		{"go", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	}

	if format, _ := m.Command().Flags().GetString("format"); format == "json" {
		obj := make(map[string]string, len(info))
		for _, row := range info {
			obj[row[0]] = row[1]
		}
		data, _ := json.MarshalIndent(obj, "", "  ")
		fmt.Fprintln(s.out, string(data))
		return multish.Continue
	}

	width := 0
	for _, row := range info {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}
	fmt.Fprintln(s.out, statusHeading.Render("runtime"))
	for _, row := range info {
		fmt.Fprintf(s.out, "  %s  %s\n", runewidth.FillRight(row[0], width), row[1])
	}
	return multish.Continue
}

// Suggest completes the applet's own flag tokens. It stays silent when
// it cannot improve on what is already typed.
func (s *Status) Suggest(tokens []string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	opts := []string{"--format", "json", "text"}
	last := tokens[len(tokens)-1]
	ranked := multish.Complete(opts, last)
	if ranked == last {
		return "", false
	}
	parts := append(append([]string{}, tokens[:len(tokens)-1]...), ranked)
	return strings.Join(parts, " "), true
}
