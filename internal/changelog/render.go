package changelog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/raveheart1/chlog/internal/output"
)

// Format selects the pending-changes display mode.
type Format string

const (
	// FormatPretty is the categorized, numbered console view.
	FormatPretty Format = "pretty"
	// FormatJSON dumps the full pending document verbatim.
	FormatJSON Format = "json"
	// FormatMarkdown renders a categorized bullet list.
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a raw format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPretty, FormatJSON, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (valid: pretty, json, markdown)", s)
	}
}

// FormatOptions controls rendering behavior.
type FormatOptions struct {
	// Plain disables colors and separators.
	Plain bool
}

// RenderPending writes the pending document to w in the given format.
func RenderPending(doc *Document, format Format, w io.Writer, opts FormatOptions) error {
	switch format {
	case FormatJSON:
		return renderJSON(doc, w)
	case FormatMarkdown:
		return renderPendingMarkdown(doc, w)
	default:
		return renderPendingPretty(doc, w, opts)
	}
}

// renderJSON dumps the document as indented JSON.
func renderJSON(doc *Document, w io.Writer) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pending changes: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderPendingMarkdown writes non-empty categories as markdown
// sections with bullet entries, author in parentheses.
func renderPendingMarkdown(doc *Document, w io.Writer) error {
	if doc.IsEmpty() {
		_, err := fmt.Fprintln(w, "No unreleased changes.")
		return err
	}

	for _, c := range Categories() {
		entries := doc.Changes[c]
		if len(entries) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, c.Heading()); err != nil {
			return err
		}
		for _, entry := range entries {
			line := "- " + entry.Description
			if entry.Author != "" {
				line += " (" + entry.Author + ")"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// renderPendingPretty writes the categorized, numbered console view.
func renderPendingPretty(doc *Document, w io.Writer, opts FormatOptions) error {
	green := sprintFunc(opts, color.FgGreen, color.Bold)
	cyan := sprintFunc(opts, color.FgCyan, color.Bold)
	white := sprintFunc(opts, color.FgWhite, color.Bold)
	dim := sprintFunc(opts, color.Faint)

	if doc.IsEmpty() {
		fmt.Fprintf(w, "%s No unreleased changes\n", green("✓"))
		return nil
	}

	output.Rule(w, opts.Plain)
	fmt.Fprintf(w, "%s\n", white(fmt.Sprintf("UNRELEASED CHANGES (%d):", doc.Metadata.TotalChanges)))
	output.Rule(w, opts.Plain)

	for _, c := range Categories() {
		entries := doc.Changes[c]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", cyan(c.Heading()))
		for i, entry := range entries {
			line := fmt.Sprintf("  %d. %s", i+1, entry.Description)
			if entry.Author != "" {
				line += " " + dim("("+entry.Author+")")
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	output.Rule(w, opts.Plain)
	return nil
}

// sprintFunc builds a color sprint function, falling back to plain
// formatting when colors are disabled.
func sprintFunc(opts FormatOptions, attrs ...color.Attribute) func(a ...interface{}) string {
	if opts.Plain {
		return fmt.Sprint
	}
	return color.New(attrs...).SprintFunc()
}
