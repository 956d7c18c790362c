// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Interactive read-eval loop over the line editor.
//
// The loop runs on the calling goroutine and the editor's blocking
// read is its only suspension point. The dispatcher is shared read-only
// between the completer and the loop body, so no locking is needed.
//
// Tab asks the dispatcher for a whole-line replacement and is
// best-effort: no suggestion leaves the buffer untouched. Ctrl-C
// discards the buffer and is handled as an accepted empty line rather
// than killing the process.

package multish

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
)

// Session configures one interactive loop. It is created by
// RunInteractiveWith and customized through the chainable setters
// before the loop starts reading.
type Session struct {
	d            *Dispatcher
	label        string
	labelStyle   lipgloss.Style
	historyLimit int
	history      []string
}

func newSession(d *Dispatcher) *Session {
	return &Session{
		d:            d,
		label:        d.name + "> ",
		labelStyle:   lipgloss.NewStyle(),
		historyLimit: 3,
	}
}

// Label sets the prompt label text. The default is the root command
// name followed by "> ".
func (s *Session) Label(text string) *Session {
	s.label = text
	return s
}

// LabelColor sets the prompt label foreground color. The default
// leaves the terminal's own color in place.
func (s *Session) LabelColor(c lipgloss.TerminalColor) *Session {
	s.labelStyle = s.labelStyle.Foreground(c)
	return s
}

// HistoryLimit caps how many accepted lines the session retains for
// recall. The default keeps 3; zero disables history.
func (s *Session) HistoryLimit(n int) *Session {
	if n < 0 {
		n = 0
	}
	s.historyLimit = n
	return s
}

// remember appends a non-blank accepted line to the bounded history
// ring, dropping the oldest entries beyond the cap. It reports whether
// the ring changed.
func (s *Session) remember(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	if s.historyLimit == 0 {
		return false
	}
	s.history = append(s.history, input)
	if len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}
	return true
}

// syncHistory mirrors the ring into the editor. The editor has no
// retention cap of its own, so it is cleared and re-read each time.
func (s *Session) syncHistory(ed *liner.State) {
	ed.ClearHistory()
	if len(s.history) == 0 {
		return
	}
	_, _ = ed.ReadHistory(strings.NewReader(strings.Join(s.history, "\n") + "\n"))
}

// RunInteractive runs an interactive session with default settings.
func (d *Dispatcher) RunInteractive() (Action, error) {
	return d.RunInteractiveWith(nil)
}

// RunInteractiveWith runs an interactive session, passing the new
// session through configure first. It reads lines until a task returns
// Break or Exit, which it returns to the caller, or until the editor
// fails irrecoverably, which surfaces as an *EditorError. Reported
// parse and dispatch errors are printed and the loop keeps going.
func (d *Dispatcher) RunInteractiveWith(configure func(*Session) *Session) (Action, error) {
	s := newSession(d)
	if configure != nil {
		s = configure(s)
	}

	ed := liner.NewLiner()
	defer ed.Close()
	ed.SetCtrlCAborts(true)
	ed.SetTabCompletionStyle(liner.TabCircular)
	ed.SetCompleter(func(buf string) []string {
		if sug, ok := d.Suggest(strings.Fields(buf)); ok {
			return []string{sug}
		}
		return nil
	})

	prompt := s.labelStyle.Render(s.label)
	for {
		input, err := ed.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(d.out)
			input, err = "", nil
		}
		if err != nil {
			return Continue, &EditorError{Err: err}
		}

		if s.remember(input) {
			s.syncHistory(ed)
		}

		action, runErr := d.Run(input)
		if runErr != nil {
			fmt.Fprintln(d.out, runErr)
			action = Continue
		}
		if action != Continue {
			return action, nil
		}
	}
}
