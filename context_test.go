package mrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
  "repository": {
    "name": "test-repo",
    "setting": {"base_url": "https://example.com/repo", "keep_size": 3}
  },
  "modules": [
    {"id": "m1", "kind": "update-json", "provider": "https://example.com/m1.json"}
  ]
}`

func writeSampleConfig(t *testing.T, dir string) string {
	t.Helper()
	jsonDir := filepath.Join(dir, JSONDir)
	require.NoError(t, os.MkdirAll(jsonDir, 0o755))
	path := filepath.Join(jsonDir, ConfigJSON)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)

	ctx, err := FromWorkingDir(dir)
	require.NoError(t, err)

	require.Equal(t, "test-repo", ctx.repository.Name)
	require.Len(t, ctx.modules, 1)
	require.Equal(t, "m1", ctx.modules[0].ID)
	require.Equal(t, filepath.Join(dir, ModulesDir), ctx.modulesDir)
}

func TestBuildExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	configPath := writeSampleConfig(t, dir)

	ctx, err := Build(configPath, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ModulesDir), ctx.ModulesDir())
}

func TestFromWorkingDirMissingConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := FromWorkingDir(dir)
	require.Error(t, err)
}

func TestFromWorkingDirInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	jsonDir := filepath.Join(dir, JSONDir)
	require.NoError(t, os.MkdirAll(jsonDir, 0o755))
	bad := `{"modules": [{"kind": "update-json"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(jsonDir, ConfigJSON), []byte(bad), 0o644))

	_, err := FromWorkingDir(dir)
	require.Error(t, err, "missing module id should fail validation")
}
