package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinch/internal/adapters/watcher"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDigestCache_FirstSightingIsChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")

	c := watcher.NewDigestCache()

	assert.True(t, c.Changed(path))
}

func TestDigestCache_UnchangedSaveIsNotChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")

	c := watcher.NewDigestCache()
	require.True(t, c.Changed(path))

	// Rewrite the same bytes, as editors do on save.
	writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")

	assert.False(t, c.Changed(path))
}

func TestDigestCache_EditIsChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")

	c := watcher.NewDigestCache()
	require.True(t, c.Changed(path))

	writeManifest(t, dir, "requirements.txt", "boto3~=1.21.0\n")

	assert.True(t, c.Changed(path))
}

func TestDigestCache_UnreadableFileIsChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")

	c := watcher.NewDigestCache()
	require.True(t, c.Changed(path))

	require.NoError(t, os.Remove(path))

	// A vanished file reports changed so the check run surfaces the error.
	assert.True(t, c.Changed(path))

	// And once it reappears it is a fresh sighting, even with old content.
	writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")
	assert.True(t, c.Changed(path))
}

func TestDigestCache_Forget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")

	c := watcher.NewDigestCache()
	require.True(t, c.Changed(path))
	require.False(t, c.Changed(path))

	c.Forget(path)

	assert.True(t, c.Changed(path))
}

func TestDigestCache_TracksPathsIndependently(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeManifest(t, dir, "requirements.txt", "boto3~=1.20.9\n")
	second := writeManifest(t, dir, "dev-requirements.txt", "pytest>=8.0\n")

	c := watcher.NewDigestCache()
	require.True(t, c.Changed(first))
	require.True(t, c.Changed(second))

	writeManifest(t, dir, "requirements.txt", "boto3~=1.21.0\n")

	assert.True(t, c.Changed(first))
	assert.False(t, c.Changed(second))
}
