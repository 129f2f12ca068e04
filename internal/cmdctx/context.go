// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

// Package cmdctx provides tool configuration loading for CLI commands.
package cmdctx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fknfilewalker/tinyldt/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigFileName is the name of the optional tinyldt configuration file.
const ConfigFileName = "ldt.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved tool configuration.
type Context struct {
	Config *config.Config
}

// Load resolves the tool configuration from the current working directory
// and returns a new context.Context with the tinyldt Context stored in it.
// A missing ldt.yaml is not an error; defaults apply.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := config.Default()
	cfgPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg}), nil
}

// From extracts the tinyldt Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}
