// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

// Package main is the entry point for the tinyldt CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fknfilewalker/tinyldt/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
