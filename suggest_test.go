// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package multish

import "testing"

// TestComplete tests the ranking leaf against the candidate set.
func TestComplete(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		query      string
		want       string
	}{
		{
			name:       "exact match is idempotent",
			candidates: []string{"deploy", "status"},
			query:      "deploy",
			want:       "deploy",
		},
		{
			name:       "partial token ranks closest candidate",
			candidates: []string{"deploy", "status"},
			query:      "dep",
			want:       "deploy",
		},
		{
			name:       "subsequence still matches",
			candidates: []string{"deploy", "status"},
			query:      "sts",
			want:       "status",
		},
		{
			name:       "no candidates returns query",
			candidates: nil,
			query:      "dep",
			want:       "dep",
		},
		{
			name:       "no match returns query",
			candidates: []string{"deploy", "status"},
			query:      "zzz",
			want:       "zzz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Complete(tt.candidates, tt.query)
			if got != tt.want {
				t.Errorf("Complete(%v, %q) = %q, want %q", tt.candidates, tt.query, got, tt.want)
			}
		})
	}
}

// TestDispatcherSuggest tests completion routing across the task tree.
func TestDispatcherSuggest(t *testing.T) {
	// deploy completes its own flag tokens; status never suggests.
	deploySug := func(tokens []string) (string, bool) {
		if len(tokens) == 0 {
			return "", false
		}
		if tokens[0] == "--ba" {
			return "--banana", true
		}
		return "", false
	}

	tests := []struct {
		name      string
		deploySug func([]string) (string, bool)
		tokens    []string
		want      string
		wantOK    bool
	}{
		{
			name:   "empty tokens suggest nothing",
			tokens: nil,
			wantOK: false,
		},
		{
			name:   "partial first token ranks registered names",
			tokens: []string{"dep"},
			want:   "deploy",
			wantOK: true,
		},
		{
			name:   "later tokens are preserved, never ranked away",
			tokens: []string{"dep", "--env", "prod"},
			want:   "deploy --env prod",
			wantOK: true,
		},
		{
			name:   "help is always a candidate",
			tokens: []string{"hel"},
			want:   "help",
			wantOK: true,
		},
		{
			name:      "resolved task owns the remaining tokens",
			deploySug: deploySug,
			tokens:    []string{"deploy", "--ba"},
			want:      "deploy --banana",
			wantOK:    true,
		},
		{
			name:      "silent task means no suggestion, no fallback",
			deploySug: deploySug,
			tokens:    []string{"deploy", "--zz"},
			wantOK:    false,
		},
		{
			name:   "exact name with nothing after it suggests nothing",
			tokens: []string{"deploy"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("shell").
				AddTask(&testTask{use: "deploy", sug: tt.deploySug}).
				AddTask(&testTask{use: "status"})

			got, ok := d.Suggest(tt.tokens)
			if ok != tt.wantOK {
				t.Fatalf("Suggest(%v) ok = %v, want %v", tt.tokens, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Suggest(%v) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}
