// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/fknfilewalker/tinyldt/internal/cmdctx"
	"github.com/fknfilewalker/tinyldt/internal/prompts"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tinyldt",
		Short:             "Inspect and rewrite EULUMDAT photometric files",
		PersistentPreRunE: cmdctx.PreRunLoad,
	}

	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newPlotCmd())
	rootCmd.AddCommand(newLampsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveFile returns the file argument, prompting for one of the .ldt
// files in the working directory when absent.
func resolveFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return prompts.SelectFile(".")
}
