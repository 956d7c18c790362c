// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dispatcher.go - Multicall command registry, grammar merge, and routing.
//
// The Dispatcher owns a name -> Task registry and presents the union of
// every task's grammar as one multicall root. Parsing is delegated to
// the grammar engine (cobra) against a tree rebuilt per line, so no
// flag state survives between lines. Execution and completion are pure
// routing: the dispatcher looks up the selected task and delegates.
//
// REGISTRY: registration happens while the builder chain runs and the
// registry is read-only afterwards; the interactive session shares it
// across its completer and loop without locking.

package multish

import (
	"io"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// usageTemplate renders help in multicall form: commands are shown by
// their own name only, never prefixed with a parent program path.
const usageTemplate = `Usage:{{if .Runnable}}
  {{.Use}}{{end}}{{if .HasAvailableSubCommands}}
  {{.Name}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "[command] --help" for more information about a command.{{end}}
`

// =============================================================================
// MATCHES
// =============================================================================

// Matches is the structured result of parsing one line: the selected
// command path relative to the dispatcher that parsed it, the executed
// leaf command with its flags populated, and the leaf's positional
// arguments.
type Matches struct {
	path []string
	cmd  *cobra.Command
	args []string
}

// Subcommand pops one level off the command path. It returns the next
// subcommand name and the matches scoped below it, so a dispatcher
// nested under another dispatcher can keep routing.
func (m *Matches) Subcommand() (string, *Matches, bool) {
	if m == nil || len(m.path) == 0 {
		return "", nil, false
	}
	return m.path[0], &Matches{path: m.path[1:], cmd: m.cmd, args: m.args}, true
}

// Command returns the executed leaf with its flags parsed.
func (m *Matches) Command() *cobra.Command {
	return m.cmd
}

// Args returns the leaf's positional arguments.
func (m *Matches) Args() []string {
	return m.args
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher is the root composite Task: it registers named tasks,
// merges their grammars under one multicall root, and routes parsing,
// execution, and completion to the task that owns them.
type Dispatcher struct {
	name  string
	out   io.Writer
	names []string
	tasks map[string]Task
}

// New creates a dispatcher whose merged grammar is rooted at name.
func New(name string) *Dispatcher {
	return &Dispatcher{
		name:  name,
		out:   os.Stdout,
		tasks: make(map[string]Task),
	}
}

// AddTask registers a task under the name its grammar declares and
// returns the dispatcher for chaining. Registering a name twice
// replaces the earlier task; the last registration wins.
func (d *Dispatcher) AddTask(t Task) *Dispatcher {
	name := t.Command().Name()
	if _, exists := d.tasks[name]; !exists {
		d.names = append(d.names, name)
	}
	d.tasks[name] = t
	return d
}

// Output redirects help text and loop-reported errors, which default
// to standard output. Returns the dispatcher for chaining.
func (d *Dispatcher) Output(w io.Writer) *Dispatcher {
	d.out = w
	return d
}

// Name returns the root command name.
func (d *Dispatcher) Name() string {
	return d.name
}

// Command builds the merged multicall grammar: one root with every
// registered task attached as a subcommand. The tree is rebuilt from
// the tasks' own Command calls on every invocation.
func (d *Dispatcher) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           d.name,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetUsageTemplate(usageTemplate)
	for _, name := range d.names {
		root.AddCommand(d.tasks[name].Command())
	}
	return root
}

// =============================================================================
// PARSING
// =============================================================================

// Parse tokenizes line with shell quoting rules and validates it
// against the merged grammar.
//
// An empty or blank line parses to (nil, nil): no matches, no error.
// Lines that only produce help output (the help command, --help, or a
// bare command group) also yield no matches. Unbalanced quoting yields
// ErrInvalidQuoting and grammar rejections yield a *GrammarError; both
// leave every task uninvoked.
func (d *Dispatcher) Parse(line string) (*Matches, error) {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		return nil, ErrInvalidQuoting
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	root := d.Command()
	root.SetOut(d.out)
	root.SetErr(d.out)

	var got *Matches
	for _, cmd := range root.Commands() {
		hookTree(cmd, &got)
	}

	root.SetArgs(tokens)
	if _, err := root.ExecuteC(); err != nil {
		return nil, &GrammarError{Err: err}
	}
	return got, nil
}

// hookTree replaces the run function of every leaf under cmd with one
// that records which command the grammar selected. Group nodes keep no
// run function, so invoking one bare prints its help, and stray tokens
// under a group are rejected as unknown commands. Run functions a task
// author set on grammar nodes are discarded here; execution happens
// through Task.Execute only.
func hookTree(cmd *cobra.Command, dst **Matches) {
	kids := cmd.Commands()
	cmd.Run = nil
	cmd.RunE = nil
	if len(kids) == 0 {
		cmd.RunE = func(leaf *cobra.Command, args []string) error {
			var path []string
			for p := leaf; p.HasParent(); p = p.Parent() {
				path = append([]string{p.Name()}, path...)
			}
			*dst = &Matches{path: path, cmd: leaf, args: args}
			return nil
		}
		return
	}
	if cmd.Args == nil {
		cmd.Args = cobra.NoArgs
	}
	for _, k := range kids {
		hookTree(k, dst)
	}
}

// =============================================================================
// EXECUTION
// =============================================================================

// Execute routes the matches to the selected task and returns its
// action verbatim. The merged grammar guarantees the selected name is
// registered; matches without a selection continue the loop.
func (d *Dispatcher) Execute(m *Matches) Action {
	name, rest, ok := m.Subcommand()
	if !ok {
		return Continue
	}
	t, ok := d.tasks[name]
	if !ok {
		return Continue
	}
	return t.Execute(rest)
}

// Run parses one line and executes the selected task. A blank line, or
// one that only produced help output, continues without invoking any
// task. Parse failures are returned to the caller with Continue; the
// caller decides whether to keep looping.
func (d *Dispatcher) Run(line string) (Action, error) {
	m, err := d.Parse(line)
	if err != nil {
		return Continue, err
	}
	if m == nil {
		return Continue, nil
	}
	return d.Execute(m), nil
}

// RunBatch splits text on newlines, then each segment on semicolons,
// trims every fragment, and runs the fragments in order. The first
// failure aborts the rest of the batch; there is no rollback of
// fragments already run.
func (d *Dispatcher) RunBatch(text string) error {
	for _, seg := range strings.Split(text, "\n") {
		for _, frag := range strings.Split(seg, ";") {
			if _, err := d.Run(strings.TrimSpace(frag)); err != nil {
				return err
			}
		}
	}
	return nil
}
