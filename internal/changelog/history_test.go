package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReleases_NewestFirst(t *testing.T) {
	engine, store, _ := newTestEngine(t)

	for _, version := range []string{"1.0.0", "1.1.0", "2.0.0"} {
		seedPending(t, store, [2]string{"added", "for " + version})
		_, err := engine.Release(version, "", false)
		require.NoError(t, err)
	}

	releases, err := LoadReleases(engine.ReleasesDir())
	require.NoError(t, err)
	require.Len(t, releases, 3)
	assert.Equal(t, "2.0.0", releases[0].Version)
	assert.Equal(t, "1.1.0", releases[1].Version)
	assert.Equal(t, "1.0.0", releases[2].Version)
}

func TestLoadReleases_MissingDirectory(t *testing.T) {
	releases, err := LoadReleases(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, releases)
}

func TestLoadReleases_SkipsCorruptAndForeignFiles(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	seedPending(t, store, [2]string{"fixed", "thing"})
	_, err := engine.Release("1.0.0", "", false)
	require.NoError(t, err)

	dir := engine.ReleasesDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "release_bad.json"), []byte("{{{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	releases, err := LoadReleases(dir)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "1.0.0", releases[0].Version)
}
