// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package multish builds busybox-style multicall shells: a single process
// that exposes many named applets behind one dispatcher, usable as a
// one-shot command, a batch script runner, or a persistent interactive
// read-eval loop with history and tab completion.
//
// Applets implement the Task interface. Each task contributes its own
// argument grammar (a cobra command), its own execution behavior, and its
// own completion logic; the Dispatcher merges all of them under a single
// multicall root without the tasks knowing about each other.
//
// # Key Types
//
//   - Task: grammar + execution + completion for one applet
//   - Dispatcher: the root composite that registers and routes tasks
//   - Matches: structured parse result handed to a task's Execute
//   - Action: Continue/Break/Exit signal a task returns to the loop
//   - Session: interactive loop configuration (label, color, history)
//
// # Usage
//
//	d := multish.New("msh").
//		AddTask(myEchoTask).
//		AddTask(myExitTask)
//
//	// One line:
//	action, err := d.Run("echo hello world")
//
//	// A script:
//	err = d.RunBatch("echo one; echo two\necho three")
//
//	// A persistent prompt:
//	action, err = d.RunInteractiveWith(func(s *multish.Session) *multish.Session {
//		return s.Label("msh> ").HistoryLimit(50)
//	})
//
// The dispatcher is read-only once tasks are registered; the interactive
// loop runs on a single goroutine with the line editor's blocking read as
// its only suspension point.
package multish
