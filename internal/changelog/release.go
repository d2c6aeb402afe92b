package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Engine performs the release state transition: it freezes the pending
// document into an immutable release record, splices a new version
// section into the changelog document and clears the pending store.
type Engine struct {
	store         *Store
	changelogPath string
	releasesDir   string

	// DateFormat controls the calendar-date rendering in the release
	// record and changelog heading.
	DateFormat string

	// Tagger, when set, creates a version-control tag after a
	// successful release. Its failure is downgraded to a warning on the
	// result and never reverses the release.
	Tagger func(version, message string) error
}

// NewEngine returns a release engine over the given pending store,
// changelog document path and releases directory.
func NewEngine(store *Store, changelogPath, releasesDir string) *Engine {
	return &Engine{
		store:         store,
		changelogPath: changelogPath,
		releasesDir:   releasesDir,
		DateFormat:    "2006-01-02",
	}
}

// ReleaseResult reports the outcome of a successful release.
type ReleaseResult struct {
	Version     string
	Date        string
	ChangeCount int
	ReleaseFile string
	// TagWarning holds a non-fatal tagging failure, empty otherwise.
	TagWarning string
	Tagged     bool
}

// NormalizeVersion strips a single leading "v" (or "V") for filename
// use. Display strings keep the original form.
func NormalizeVersion(version string) string {
	if len(version) > 1 && (version[0] == 'v' || version[0] == 'V') {
		return version[1:]
	}
	return version
}

// ReleasesDir returns the directory holding the release records.
func (e *Engine) ReleasesDir() string {
	return e.releasesDir
}

// ReleaseFilePath returns the release record path for a version.
func (e *Engine) ReleaseFilePath(version string) string {
	return filepath.Join(e.releasesDir, "release_"+NormalizeVersion(version)+".json")
}

// Release creates a release for the given version. It fails with
// ErrNoPendingChanges when the pending store is empty and with
// ReleaseExistsError when a record for the version was already
// captured; in both cases nothing is written.
func (e *Engine) Release(version, notes string, tag bool) (*ReleaseResult, error) {
	doc, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.IsEmpty() {
		return nil, ErrNoPendingChanges
	}

	releaseFile := e.ReleaseFilePath(version)
	if _, err := os.Stat(releaseFile); err == nil {
		return nil, &ReleaseExistsError{Version: version, Path: releaseFile}
	}

	now := time.Now()
	rel := Release{
		Version:      version,
		Date:         now.Format(e.DateFormat),
		Timestamp:    now,
		ReleaseNotes: notes,
		Changes:      snapshotChanges(doc.Changes),
		Metadata:     Metadata{TotalChanges: doc.Metadata.TotalChanges},
	}

	if err := e.writeRelease(releaseFile, &rel); err != nil {
		return nil, err
	}
	if err := e.updateChangelog(&rel); err != nil {
		return nil, err
	}
	if _, err := e.store.Reset(); err != nil {
		return nil, err
	}

	result := &ReleaseResult{
		Version:     rel.Version,
		Date:        rel.Date,
		ChangeCount: rel.Metadata.TotalChanges,
		ReleaseFile: releaseFile,
	}

	if tag && e.Tagger != nil {
		message := "Release " + version
		if notes != "" {
			message += ": " + notes
		}
		if err := e.Tagger(version, message); err != nil {
			result.TagWarning = fmt.Sprintf("could not create tag %s: %v", version, err)
		} else {
			result.Tagged = true
		}
	}

	return result, nil
}

// writeRelease persists the immutable release record.
func (e *Engine) writeRelease(path string, rel *Release) error {
	data, err := json.MarshalIndent(rel, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding release record: %w", err)
	}
	if err := os.MkdirAll(e.releasesDir, 0755); err != nil {
		return fmt.Errorf("creating releases directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing release record: %w", err)
	}
	return nil
}

// updateChangelog splices the release section into the changelog
// document, creating a minimal document when none exists yet.
func (e *Engine) updateChangelog(rel *Release) error {
	content := "# Changelog\n\n" + UnreleasedHeading + "\n"
	if data, err := os.ReadFile(e.changelogPath); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading changelog: %w", err)
	}

	block := ReleaseBlock(rel.Version, rel.Date, rel.ReleaseNotes, rel.Changes)
	content = InsertRelease(content, block)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := os.WriteFile(e.changelogPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}
