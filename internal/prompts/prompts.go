// SPDX-License-Identifier: MIT
// Copyright 2026 Lukas Lipp

// Package prompts provides interactive terminal prompts and styled output
// for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form = theme.Form.MarginTop(1)
	theme.Group = theme.Group.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Println(success.Render("\n" + successMsg))
	}
}

// PrintWarning prints a styled warning line.
func PrintWarning(msg string) {
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	fmt.Println(warn.Render("! " + msg))
}

// SelectFile prompts for one of the photometric files found in dir.
func SelectFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.ldt"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.New("no .ldt files found in current directory")
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Photometric file").
			Options(huh.NewOptions(matches...)...).
			Value(&selected),
	)).WithTheme(Theme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}
