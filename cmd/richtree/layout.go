// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cogentcore.org/richtree/layout"
)

func layoutCmd(cfg *Config) *cobra.Command {
	var charWidth, lineHeight float32
	cmd := &cobra.Command{
		Use:   "layout [flags] document",
		Short: "Print the laid out items of a tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(cfg, args[0], layout.Monospace{CharWidth: charWidth, LineHeight: lineHeight})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), sc.view.Layout())
		},
	}
	cmd.Flags().Float32Var(&charWidth, "char-width", 7, "width of one character")
	cmd.Flags().Float32Var(&lineHeight, "line-height", 13, "height of a line of text")
	return cmd
}

// printResult writes one line per positioned item, in a table.
func printResult(w io.Writer, r *layout.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "size\t%v\trows\t%d\trow height\t%g\n", r.Size, r.Rows, r.RowHeight)
	for _, h := range r.Headers {
		fmt.Fprintf(tw, "header\t%d\t%q\t%v\n", h.Index, h.Text, h.Bounds.Min)
	}
	for _, it := range r.Labels {
		fmt.Fprintf(tw, "label\t%d\t%s%q\t%v\n", it.Row, strings.Repeat("  ", it.Depth), it.Text, it.Bounds.Min)
	}
	for _, it := range r.Values {
		fmt.Fprintf(tw, "value\t%d\t%s[%d] %q\t%v\n", it.Row, it.Node.Text(), it.Index, it.Text, it.Bounds.Min)
	}
	for _, m := range r.Checks {
		fmt.Fprintf(tw, "check\t%s[%d]\t%v\t%v\n", m.Node.Text(), m.Index, m.Checked, m.Bounds.Min)
	}
	for _, m := range r.Icons {
		fmt.Fprintf(tw, "icon\t%s\t\t%v\n", m.Node.Text(), m.Bounds.Min)
	}
	for _, c := range r.Columns {
		fmt.Fprintf(tw, "column\t%d\t%g\t%g\n", c.Index, c.Left, c.Right)
	}
	return tw.Flush()
}
