package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/changelog"
)

// Note: these tests cannot run in parallel because they share the
// global rootCmd and its flag variables.

// runCommand executes a chlog invocation against the given project
// root, feeding stdin and capturing stdout/stderr.
func runCommand(t *testing.T, root, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(root, "config.json")}, args...))

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores flag variables mutated by earlier executions.
func resetFlags() {
	showAllFlag, showFormatFlag, showPlainFlag = false, "pretty", true
	removeTypeFlag, removePatternFlag, removeIndexFlag = "", "", 0
	releaseNotesFlag, releaseTagFlag = "", false
	historyLimitFlag = 0
}

func pendingDocument(t *testing.T, root string) *changelog.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, ".changelog", "unreleased.json"))
	require.NoError(t, err)
	var doc changelog.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return &doc
}

func TestInit_Idempotent(t *testing.T) {
	root := t.TempDir()

	for i := 0; i < 2; i++ {
		out, _, err := runCommand(t, root, "", "init", "--name", "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "Changelog project initialized")

		content, err := os.ReadFile(filepath.Join(root, "CHANGELOG.md"))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(content), "## [Unreleased]"))
		assert.Contains(t, string(content), "# Changelog - demo")

		assert.Equal(t, 0, pendingDocument(t, root).Metadata.TotalChanges)
	}
}

func TestAddThenShowMarkdown(t *testing.T) {
	root := t.TempDir()

	out, _, err := runCommand(t, root, "", "add", "fixed", "Fix crash on startup", "--author", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Change recorded: [fixed] Fix crash on startup")
	assert.Contains(t, out, "Author: Ana")

	out, _, err = runCommand(t, root, "", "show", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "### Fixed")
	assert.Contains(t, out, "- Fix crash on startup (Ana)")
}

func TestAdd_InvalidCategoryReportedNotFatal(t *testing.T) {
	root := t.TempDir()

	_, errOut, err := runCommand(t, root, "", "add", "hotfix", "nope")
	require.NoError(t, err, "invalid category is reported, not a process failure")
	assert.Contains(t, errOut, "unsupported change category")
	assert.Contains(t, errOut, "added, changed, deprecated, removed, fixed, security")
}

func TestRemove_SingleCandidateConfirmAndDecline(t *testing.T) {
	root := t.TempDir()
	_, _, err := runCommand(t, root, "", "add", "added", "Draft feature")
	require.NoError(t, err)

	// Declining leaves the entry in place.
	out, _, err := runCommand(t, root, "n\n", "remove", "--pattern", "draft")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Equal(t, 1, pendingDocument(t, root).Metadata.TotalChanges)

	// Confirming removes it and prunes the category.
	out, _, err = runCommand(t, root, "y\n", "remove", "--pattern", "draft")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 change(s)")

	doc := pendingDocument(t, root)
	assert.Equal(t, 0, doc.Metadata.TotalChanges)
	_, exists := doc.Changes[changelog.CategoryAdded]
	assert.False(t, exists)
}

func TestRemove_MultipleCandidatesPickSubset(t *testing.T) {
	root := t.TempDir()
	for _, desc := range []string{"one", "two", "three"} {
		_, _, err := runCommand(t, root, "", "add", "changed", desc)
		require.NoError(t, err)
	}

	// Choose "pick specific" then entries 1 and 3.
	out, _, err := runCommand(t, root, "2\n1,3\n", "remove", "--type", "changed")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2 change(s)")

	doc := pendingDocument(t, root)
	require.Len(t, doc.Changes[changelog.CategoryChanged], 1)
	assert.Equal(t, "two", doc.Changes[changelog.CategoryChanged][0].Description)
}

func TestRemove_NoMatchReportedNotFatal(t *testing.T) {
	root := t.TempDir()
	_, _, err := runCommand(t, root, "", "add", "added", "something")
	require.NoError(t, err)

	_, errOut, err := runCommand(t, root, "", "remove", "--pattern", "zzz")
	require.NoError(t, err)
	assert.Contains(t, errOut, "no changes matched")
	assert.Equal(t, 1, pendingDocument(t, root).Metadata.TotalChanges)
}

func TestRelease_EndToEnd(t *testing.T) {
	root := t.TempDir()
	_, _, err := runCommand(t, root, "", "init")
	require.NoError(t, err)
	_, _, err = runCommand(t, root, "", "add", "added", "Export command")
	require.NoError(t, err)
	_, _, err = runCommand(t, root, "", "add", "fixed", "Crash on empty input")
	require.NoError(t, err)

	out, _, err := runCommand(t, root, "", "release", "1.2.0", "--notes", "First stable")
	require.NoError(t, err)
	assert.Contains(t, out, "Release 1.2.0 created")
	assert.Contains(t, out, "Changes: 2")

	assert.FileExists(t, filepath.Join(root, ".changelog", "releases", "release_1.2.0.json"))
	assert.Equal(t, 0, pendingDocument(t, root).Metadata.TotalChanges)

	content, err := os.ReadFile(filepath.Join(root, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "## [1.2.0]")
	assert.Contains(t, string(content), "First stable")

	// A second release with nothing pending is rejected gracefully.
	_, errOut, err := runCommand(t, root, "", "release", "1.3.0")
	require.NoError(t, err)
	assert.Contains(t, errOut, "No unreleased changes to release")
	assert.NoFileExists(t, filepath.Join(root, ".changelog", "releases", "release_1.3.0.json"))
}

func TestConfigUpdateAndShow(t *testing.T) {
	root := t.TempDir()

	out, _, err := runCommand(t, root, "", "config", "update", "settings.auto_backup", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration updated: settings.auto_backup = false")

	out, _, err = runCommand(t, root, "", "config", "update", "version", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "version = 1.0.0")

	out, _, err = runCommand(t, root, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "auto_backup:     false")
	assert.Contains(t, out, "Version: 1.0.0")
}

func TestConfigUpdate_UnknownKeyReportedNotFatal(t *testing.T) {
	root := t.TempDir()

	_, errOut, err := runCommand(t, root, "", "config", "update", "settings.theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, errOut, "unknown configuration key")

	_, errOut, err = runCommand(t, root, "", "config", "update", "colors.theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, errOut, "unknown configuration section")
}

func TestStats(t *testing.T) {
	root := t.TempDir()
	_, _, err := runCommand(t, root, "", "add", "added", "one", "--author", "Ana")
	require.NoError(t, err)
	_, _, err = runCommand(t, root, "", "add", "fixed", "two", "--author", "Ana")
	require.NoError(t, err)

	out, _, err := runCommand(t, root, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Unreleased change statistics:")
	assert.Contains(t, out, "added")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "Ana")

	// Empty store short-circuits to a success line.
	empty := t.TempDir()
	out, _, err = runCommand(t, empty, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No unreleased changes")
}

func TestHistory_ListsReleasesNewestFirst(t *testing.T) {
	root := t.TempDir()

	out, _, err := runCommand(t, root, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No releases yet")

	for _, version := range []string{"1.0.0", "1.1.0"} {
		_, _, err = runCommand(t, root, "", "add", "added", "for "+version)
		require.NoError(t, err)
		_, _, err = runCommand(t, root, "", "release", version, "--notes", "notes for "+version)
		require.NoError(t, err)
	}

	out, _, err = runCommand(t, root, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Releases (2):")
	assert.Less(t, strings.Index(out, "1.1.0"), strings.Index(out, "1.0.0"))
	assert.Contains(t, out, "notes for 1.1.0")

	out, _, err = runCommand(t, root, "", "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1.1.0")
	assert.NotContains(t, out, "1.0.0")
}

func TestVersion(t *testing.T) {
	out, _, err := runCommand(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chlog dev")
}

func TestShowAll_DumpsChangelogDocument(t *testing.T) {
	root := t.TempDir()
	_, _, err := runCommand(t, root, "", "init", "--name", "demo")
	require.NoError(t, err)
	_, _, err = runCommand(t, root, "", "add", "added", "thing")
	require.NoError(t, err)

	out, _, err := runCommand(t, root, "", "show", "--all", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "ALL CHANGES (from CHANGELOG.md):")
	assert.Contains(t, out, "# Changelog - demo")
	assert.Contains(t, out, "UNRELEASED CHANGES (1):")
}
