// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fknfilewalker/tinyldt/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(version.Info())
		},
	}
}
