// Package output provides terminal output formatting utilities for the
// chlog CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// Rule prints a horizontal separator sized to the terminal, capped at
// 60 columns to match the compact report blocks.
func Rule(out io.Writer, plain bool) {
	width := GetTerminalWidth()
	if width > 60 {
		width = 60
	}
	line := strings.Repeat("─", width)
	if plain {
		fmt.Fprintln(out, line)
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(out, dim(line))
}

// PrintSuccess prints a green checkmark followed by the message.
func PrintSuccess(out io.Writer, format string, args ...interface{}) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// PrintWarning prints a yellow warning marker followed by the message.
func PrintWarning(out io.Writer, format string, args ...interface{}) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}

// PrintFailure prints a red cross followed by the message. Used for
// reported-but-recovered conditions that do not abort the process.
func PrintFailure(out io.Writer, format string, args ...interface{}) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), fmt.Sprintf(format, args...))
}

// PrintDetail prints an indented secondary line below a status message.
func PrintDetail(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(out, "  %s\n", fmt.Sprintf(format, args...))
}
