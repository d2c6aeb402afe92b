package changelog

import "sort"

// CategoryCount is the number of pending entries in one category.
type CategoryCount struct {
	Category Category
	Count    int
}

// AuthorCount is the number of pending entries attributed to one author.
type AuthorCount struct {
	Author string
	Count  int
}

// Stats summarizes the pending document: per-category counts (zero
// counts omitted, standard order), a grand total, and per-author
// contribution counts sorted descending.
type Stats struct {
	Categories []CategoryCount
	Total      int
	Authors    []AuthorCount
}

// ComputeStats derives statistics from the pending document.
func ComputeStats(doc *Document) Stats {
	var stats Stats

	for _, c := range Categories() {
		n := len(doc.Changes[c])
		if n == 0 {
			continue
		}
		stats.Categories = append(stats.Categories, CategoryCount{Category: c, Count: n})
		stats.Total += n
	}

	byAuthor := make(map[string]int)
	for _, entries := range doc.Changes {
		for _, entry := range entries {
			if entry.Author != "" {
				byAuthor[entry.Author]++
			}
		}
	}
	for author, count := range byAuthor {
		stats.Authors = append(stats.Authors, AuthorCount{Author: author, Count: count})
	}
	sort.Slice(stats.Authors, func(i, j int) bool {
		if stats.Authors[i].Count != stats.Authors[j].Count {
			return stats.Authors[i].Count > stats.Authors[j].Count
		}
		return stats.Authors[i].Author < stats.Authors[j].Author
	})

	return stats
}
