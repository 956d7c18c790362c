// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Optional on-disk session settings.
//
// Host binaries usually want the prompt to be user-tunable without
// recompiling. Config carries the session knobs in TOML form and
// applies them onto a Session, so a loaded config can be passed
// straight to RunInteractiveWith.

package multish

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Config holds user-facing session settings. Zero values mean "keep
// the session default".
type Config struct {
	// Label is the prompt label text.
	Label string `toml:"label"`
	// LabelColor is a lipgloss color for the label: an ANSI number
	// ("6"), an ANSI256 number ("86"), or a hex value ("#5fd7ff").
	LabelColor string `toml:"label_color"`
	// HistoryLimit caps how many lines the session retains.
	HistoryLimit int `toml:"history_limit"`
}

// LoadConfig reads a TOML config from path. A missing file is not an
// error; it yields a zero config so session defaults apply.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies the set fields onto a session and returns it, matching
// the configure function shape RunInteractiveWith expects.
func (c *Config) Apply(s *Session) *Session {
	if c == nil {
		return s
	}
	if c.Label != "" {
		s = s.Label(c.Label)
	}
	if c.LabelColor != "" {
		s = s.LabelColor(lipgloss.Color(c.LabelColor))
	}
	if c.HistoryLimit > 0 {
		s = s.HistoryLimit(c.HistoryLimit)
	}
	return s
}
