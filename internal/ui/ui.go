// Package ui holds the color styles and small print helpers shared by the
// CLI commands.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	Title   = color.New(color.FgCyan, color.Bold)
	Success = color.New(color.FgGreen)
	Warn    = color.New(color.FgYellow)
	Fail    = color.New(color.FgRed)
	Muted   = color.New(color.FgHiBlack)
)

// Successf prints a green check-marked line.
func Successf(format string, args ...any) {
	Success.Printf("✓ "+format+"\n", args...)
}

// Warnf prints a yellow warning line.
func Warnf(format string, args ...any) {
	Warn.Printf("⚠ "+format+"\n", args...)
}

// Failf prints a red error line.
func Failf(format string, args ...any) {
	Fail.Printf("✗ "+format+"\n", args...)
}

// Linef prints a plain line.
func Linef(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
