package changelog

import (
	"sort"
	"strings"
)

// Candidate is a pending entry matched by the removal filters, with
// enough position information to delete it from the document.
type Candidate struct {
	Category Category
	// Index is the entry's position within its category list.
	Index int
	// GlobalIndex is the 1-based position across all categories
	// concatenated in standard order.
	GlobalIndex int
	Entry       Entry
}

// SelectForRemoval resolves the removal filters against the document
// and returns the matching candidates in global-index order.
//
// Filters combine conjunctively:
//   - category restricts candidates to a single category ("" = all)
//   - pattern keeps entries whose description contains it,
//     case-insensitively ("" = all)
//   - globalIndex keeps only the entry at that 1-based global position
//     (0 = all)
//
// The selection is pure: it never mutates the document and performs no
// user interaction.
func SelectForRemoval(doc *Document, category Category, pattern string, globalIndex int) []Candidate {
	var candidates []Candidate
	loweredPattern := strings.ToLower(pattern)

	position := 0
	for _, c := range Categories() {
		for i, entry := range doc.Changes[c] {
			position++

			if category != "" && c != category {
				continue
			}
			if pattern != "" && !strings.Contains(strings.ToLower(entry.Description), loweredPattern) {
				continue
			}
			if globalIndex != 0 && position != globalIndex {
				continue
			}

			candidates = append(candidates, Candidate{
				Category:    c,
				Index:       i,
				GlobalIndex: position,
				Entry:       entry,
			})
		}
	}
	return candidates
}

// RemoveCandidates deletes the given candidates from the document,
// prunes categories left empty and recomputes the total. Deletions
// within a category are applied in descending index order so earlier
// removals do not invalidate later indexes. The caller saves the
// document afterwards.
func RemoveCandidates(doc *Document, picked []Candidate) {
	byCategory := make(map[Category][]int)
	for _, cand := range picked {
		byCategory[cand.Category] = append(byCategory[cand.Category], cand.Index)
	}

	for c, indexes := range byCategory {
		sort.Sort(sort.Reverse(sort.IntSlice(indexes)))
		entries := doc.Changes[c]
		for _, i := range indexes {
			if i < 0 || i >= len(entries) {
				continue
			}
			entries = append(entries[:i], entries[i+1:]...)
		}
		if len(entries) == 0 {
			delete(doc.Changes, c)
		} else {
			doc.Changes[c] = entries
		}
	}

	doc.Recount()
}
