// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command richtree lays out and renders tree documents with the
// multi-column tree view.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/richtree/base/logx"
)

// Config holds the global flags.
type Config struct {
	Verbose     bool
	VeryVerbose bool
	Quiet       bool

	// Settings is the optional view settings file.
	Settings string

	// Check enables check mode regardless of the document.
	Check bool

	// Edits are value edits applied after loading, as path:index=value.
	Edits []string
}

func main() {
	var cfg Config
	rootCmd := &cobra.Command{
		Use:   "richtree",
		Short: "Lay out and render tree documents",
		Long: `richtree reads a tree document in YAML, TOML, or JSON, with its
columns and nodes, and renders it as the multi-column tree view would.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only log errors")
	pf.StringVarP(&cfg.Settings, "settings", "s", "", "view settings file (.toml, .yaml, or .json)")
	pf.BoolVar(&cfg.Check, "check", false, "show a check box for every node")
	pf.StringArrayVar(&cfg.Edits, "set", nil, "edit a value before rendering, as path/of/labels:index=value (repeatable)")

	rootCmd.AddCommand(renderCmd(&cfg), layoutCmd(&cfg))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
