package mrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	unformatted := `{"repository":{"name":"r","setting":{"base_url":"https://x","keep_size":1}},"modules":[]}`
	require.NoError(t, os.WriteFile(path, []byte(unformatted), 0o644))

	require.True(t, Format(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")
}

func TestFormatToDistinctPath(t *testing.T) {
	dir := t.TempDir()
	from := writeSampleConfig(t, dir)
	to := filepath.Join(dir, "formatted.json")

	require.True(t, FormatTo(from, to))
	require.FileExists(t, to)
}

func TestFormatMissingFile(t *testing.T) {
	require.False(t, Format(filepath.Join(t.TempDir(), "missing.json")))
}

func TestContextFormat(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)

	ctx, err := FromWorkingDir(dir)
	require.NoError(t, err)
	require.True(t, ctx.Format())
}

func TestContextFormatTo(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)

	ctx, err := FromWorkingDir(dir)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.json")
	require.True(t, ctx.FormatTo(out))
	require.FileExists(t, out)
}
