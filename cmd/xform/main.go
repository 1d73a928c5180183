// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xform composes transform pipeline files into matrices.
//
// Usage:
//
//	xform compose [--bits] file.toml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/vkmath/base/errors"
	"cogentcore.org/vkmath/base/logx"
	"cogentcore.org/vkmath/math32"
	"cogentcore.org/vkmath/xform"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the flags shared by all commands.
type options struct {
	veryVerbose bool
	verbose     bool
	quiet       bool
	bits        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "xform",
		Short:         "Compose translate, rotate and scale pipelines into 4x4 matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
			logx.SetDefault(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&opts.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only show errors")

	compose := &cobra.Command{
		Use:   "compose <file>",
		Short: "Print the matrix of a TOML or YAML pipeline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.Log(runCompose(cmd.OutOrStdout(), args[0], opts))
		},
	}
	compose.Flags().BoolVar(&opts.bits, "bits", false, "print IEEE 754 bit patterns instead of values")
	root.AddCommand(compose)
	return root
}

func runCompose(w io.Writer, filename string, opts *options) error {
	p, err := xform.Open(filename)
	if err != nil {
		return err
	}
	slog.Info("composing pipeline", "name", p.Name, "steps", len(p.Steps))
	m, err := p.Compose()
	if err != nil {
		return err
	}
	if det := m.Determinant(); det == 0 {
		slog.Warn("pipeline matrix is singular", "name", p.Name)
	}
	if opts.bits {
		bits := xform.UniformBits(m)
		for i := 0; i < 4; i++ {
			fmt.Fprintf(w, "%08x %08x %08x %08x\n", uint32(bits[4*i]), uint32(bits[4*i+1]), uint32(bits[4*i+2]), uint32(bits[4*i+3]))
		}
	} else {
		printMatrix(w, m)
	}
	if b, ok := p.Bounds(m); ok {
		fmt.Fprintln(w, "bounds", b)
	}
	return nil
}

// printMatrix writes the rows of m, one per line.
func printMatrix(w io.Writer, m math32.Matrix4) {
	for i := 0; i < 4; i++ {
		fmt.Fprintln(w, m.Row(i))
	}
}
