package changelog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadReleases reads every release record under dir and returns them
// newest first. A missing directory means no releases yet. Records that
// fail to parse are skipped rather than failing the whole listing.
func LoadReleases(dir string) ([]Release, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading releases directory: %w", err)
	}

	var releases []Release
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "release_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading release record %s: %w", name, err)
		}
		var rel Release
		if err := json.Unmarshal(data, &rel); err != nil {
			continue
		}
		releases = append(releases, rel)
	}

	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Timestamp.After(releases[j].Timestamp)
	})
	return releases, nil
}
