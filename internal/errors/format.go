package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions with auto-detection for terminal support.
	// These fall back gracefully when colors are unavailable.
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats a CLIError for display in the terminal.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorLabel("Error"))
	sb.WriteString(" [")
	sb.WriteString(categoryFmt(err.Category.String()))
	sb.WriteString("]: ")
	sb.WriteString(errorMsg(err.Message))
	sb.WriteString("\n")

	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fixLabel("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString("  ")
			sb.WriteString(bullet("•"))
			sb.WriteString(" ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// PrintError prints a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
