package changelog

import (
	"fmt"
	"strings"
)

// UnreleasedHeading is the marker line that anchors release insertion
// in the changelog document. New release sections go immediately below
// it; the marker itself is never removed by a release.
const UnreleasedHeading = "## [Unreleased]"

// InitialDocument renders the minimal starting changelog document: a
// title naming the project, the Keep a Changelog preamble and a bare
// Unreleased heading with no entries.
func InitialDocument(project string) string {
	return fmt.Sprintf(`# Changelog - %s

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/),
and this project adheres to [Semantic Versioning](https://semver.org/).

%s
`, project, UnreleasedHeading)
}

// ReleaseBlock renders the changelog section for a release: a
// version+date heading, an optional notes paragraph, then one
// sub-section per non-empty category in standard order listing entry
// descriptions with an "(author)" suffix when present.
func ReleaseBlock(version, date, notes string, changes map[Category][]Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n## [%s] - %s\n", version, date)
	if notes != "" {
		fmt.Fprintf(&b, "\n%s\n", notes)
	}

	for _, c := range Categories() {
		entries := changes[c]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", c.Heading())
		for _, entry := range entries {
			b.WriteString("- " + entry.Description)
			if entry.Author != "" {
				b.WriteString(" (" + entry.Author + ")")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// InsertRelease splices a rendered release block into the changelog
// document text: immediately after the first line that is exactly the
// Unreleased heading, or appended at the end when no such line exists.
func InsertRelease(content, block string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines)+1)

	inserted := false
	for _, line := range lines {
		out = append(out, line)
		if !inserted && strings.TrimSpace(line) == UnreleasedHeading {
			out = append(out, block)
			inserted = true
		}
	}
	if !inserted {
		out = append(out, block)
	}

	return strings.Join(out, "\n")
}
