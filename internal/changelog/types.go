// Package changelog implements the pending-change store, release engine
// and document rendering for the chlog CLI. Pending changes accumulate
// in a JSON-backed document grouped by Keep a Changelog category until
// a release freezes them into an immutable release record and splices a
// new version section into the changelog document.
package changelog

import (
	"time"
)

// Category is one of the six Keep a Changelog change kinds.
// The set is closed: unknown categories are rejected on input rather
// than silently creating new sections.
type Category string

const (
	CategoryAdded      Category = "added"
	CategoryChanged    Category = "changed"
	CategoryDeprecated Category = "deprecated"
	CategoryRemoved    Category = "removed"
	CategoryFixed      Category = "fixed"
	CategorySecurity   Category = "security"
)

// Categories returns all valid categories in their standard rendering
// order. This order also defines the global index used for removal.
func Categories() []Category {
	return []Category{
		CategoryAdded,
		CategoryChanged,
		CategoryDeprecated,
		CategoryRemoved,
		CategoryFixed,
		CategorySecurity,
	}
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &InvalidCategoryError{Category: s}
}

// Heading returns the markdown sub-section heading for the category.
func (c Category) Heading() string {
	return "### " + c.Title()
}

// Title returns the capitalized display name of the category.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return string(s[0]-'a'+'A') + s[1:]
}

// Entry is a single recorded change. An entry lives inside exactly one
// category list of a Document until it is removed or rolled into a
// Release.
type Entry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Author      string    `json:"author,omitempty"`
	Status      string    `json:"status"`
}

// Metadata carries derived counters for a Document or Release.
type Metadata struct {
	TotalChanges int `json:"total_changes"`
}

// Document is the pending-change store: all not-yet-released entries
// grouped by category. TotalChanges is recomputed after every mutation
// so it always equals the sum of the category list lengths.
type Document struct {
	Project      string               `json:"project"`
	Created      time.Time            `json:"created"`
	LastModified time.Time            `json:"last_modified"`
	Changes      map[Category][]Entry `json:"changes"`
	Metadata     Metadata             `json:"metadata"`
}

// Release is the immutable per-release record. It is written once at
// release time and never modified afterwards.
type Release struct {
	Version      string               `json:"version"`
	Date         string               `json:"date"`
	Timestamp    time.Time            `json:"timestamp"`
	ReleaseNotes string               `json:"release_notes"`
	Changes      map[Category][]Entry `json:"changes"`
	Metadata     Metadata             `json:"metadata"`
}

// NewDocument returns an empty pending-change document with all six
// categories present and counters zeroed.
func NewDocument(project string) *Document {
	now := time.Now()
	changes := make(map[Category][]Entry, len(Categories()))
	for _, c := range Categories() {
		changes[c] = []Entry{}
	}
	return &Document{
		Project:      project,
		Created:      now,
		LastModified: now,
		Changes:      changes,
		Metadata:     Metadata{TotalChanges: 0},
	}
}

// Recount recomputes TotalChanges from the category lists.
func (d *Document) Recount() {
	total := 0
	for _, entries := range d.Changes {
		total += len(entries)
	}
	d.Metadata.TotalChanges = total
}

// Entries returns all pending entries flattened in category order.
// Positions in the returned slice correspond to the 1-based global
// index used by removal.
func (d *Document) Entries() []Entry {
	entries := make([]Entry, 0, d.Metadata.TotalChanges)
	for _, c := range Categories() {
		entries = append(entries, d.Changes[c]...)
	}
	return entries
}

// IsEmpty reports whether the document has no pending entries.
func (d *Document) IsEmpty() bool {
	return d.Metadata.TotalChanges == 0
}

// snapshotChanges deep-copies the category map so a Release is
// insulated from later mutations of the pending document.
func snapshotChanges(changes map[Category][]Entry) map[Category][]Entry {
	out := make(map[Category][]Entry, len(changes))
	for c, entries := range changes {
		copied := make([]Entry, len(entries))
		copy(copied, entries)
		out[c] = copied
	}
	return out
}
