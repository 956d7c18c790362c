// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides msh, a small busybox-style shell that
// demonstrates the multish dispatcher: the same applet set is
// reachable as one-shot argv, as a batch script, or inside an
// interactive prompt with history and tab completion.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/jeranaias/multish"
	"github.com/jeranaias/multish/internal/applets"
)

// Version information (set at build time)
var Version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "session config file (default ~/.msh.toml)")
	batch := flag.String("c", "", "run the given commands and exit")
	flag.Parse()

	d := multish.New("msh").
		AddTask(applets.NewEcho(os.Stdout)).
		AddTask(applets.NewStatus(os.Stdout, Version)).
		AddTask(applets.NewQuit()).
		AddTask(applets.NewExit())

	switch {
	case *batch != "":
		if err := d.RunBatch(*batch); err != nil {
			die(err)
		}

	case flag.NArg() > 0:
		if _, err := d.Run(strings.Join(flag.Args(), " ")); err != nil {
			die(err)
		}

	case !term.IsTerminal(int(os.Stdin.Fd())):
		script, err := io.ReadAll(os.Stdin)
		if err != nil {
			die(err)
		}
		if err := d.RunBatch(string(script)); err != nil {
			die(err)
		}

	default:
		cfg, err := multish.LoadConfig(configFile(*configPath))
		if err != nil {
			die(err)
		}
		action, err := d.RunInteractiveWith(cfg.Apply)
		if err != nil {
			// Ctrl-D ends the session like a quit.
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			die(err)
		}
		if action == multish.Exit {
			os.Exit(0)
		}
	}
}

func configFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".msh.toml"
	}
	return filepath.Join(home, ".msh.toml")
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "msh: %v\n", err)
	os.Exit(1)
}
