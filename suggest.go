// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Completion composition across the task tree.
//
// Ranking itself is delegated to the fuzzy matcher; this file only
// decides who owns the tokens. A resolved task owns everything after
// its name, and its verdict is final: when a resolved task offers
// nothing, the dispatcher offers nothing, because a resolved name is
// already unambiguous.

package multish

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Complete ranks query against candidates and returns the best match,
// or the query unchanged when no candidate matches. An exact candidate
// is always returned as itself, so completion is idempotent on a token
// that already matches.
func Complete(candidates []string, query string) string {
	for _, c := range candidates {
		if c == query {
			return query
		}
	}
	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 {
		return query
	}
	return matches[0].Str
}

// Suggest produces a replacement line for a partial token sequence.
//
// When the first token resolves to a registered task, the remaining
// tokens are handed to that task's own Suggest and its answer is
// reattached behind the name; no fallback happens when it declines.
// When the first token resolves to nothing, it is ranked against the
// registered names plus the literal "help", and every later token is
// kept as typed.
func (d *Dispatcher) Suggest(tokens []string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	head, rest := tokens[0], tokens[1:]

	if t, ok := d.tasks[head]; ok {
		sug, ok := t.Suggest(rest)
		if !ok {
			return "", false
		}
		return head + " " + sug, true
	}

	candidates := make([]string, 0, len(d.names)+1)
	candidates = append(candidates, d.names...)
	candidates = append(candidates, "help")
	parts := append([]string{Complete(candidates, head)}, rest...)
	return strings.Join(parts, " "), true
}
