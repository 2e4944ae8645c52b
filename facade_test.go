package mrepo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, id, version string, versionCode int64) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("module.prop")
	require.NoError(t, err)
	prop := fmt.Sprintf("id=%s\nname=%s\nversion=%s\nversionCode=%d\nauthor=tester\ndescription=desc\n", id, id, version, versionCode)
	_, err = w.Write([]byte(prop))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestContextUpdateAndUpgrade(t *testing.T) {
	dir := t.TempDir()

	mux := http.NewServeMux()
	mux.HandleFunc("/m1.zip", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buildZip(t, "m1", "1.0", 10))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	jsonDir := filepath.Join(dir, JSONDir)
	require.NoError(t, os.MkdirAll(jsonDir, 0o755))
	config := fmt.Sprintf(`{
  "repository": {"name": "r", "setting": {"base_url": "https://example.com/repo", "keep_size": 3}},
  "modules": [{"id": "m1", "kind": "zip-url", "provider": %q}]
}`, srv.URL+"/m1.zip")
	require.NoError(t, os.WriteFile(filepath.Join(jsonDir, ConfigJSON), []byte(config), 0o644))

	ctx, err := FromWorkingDir(dir)
	require.NoError(t, err)

	results := ctx.Update(context.Background(), nil)
	require.Len(t, results, 1)
	require.True(t, results[0].Success)

	removed, err := ctx.Upgrade(true)
	require.NoError(t, err)
	require.Empty(t, removed)

	require.FileExists(t, filepath.Join(jsonDir, ModulesJSON))
}

func TestContextUpgradeToExplicitPath(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)

	ctx, err := FromWorkingDir(dir)
	require.NoError(t, err)

	out := filepath.Join(dir, "custom-index.json")
	_, err = ctx.UpgradeTo(out, false)
	require.NoError(t, err)
	require.FileExists(t, out)
}

func TestContextUpdateFiltersByID(t *testing.T) {
	dir := t.TempDir()
	writeSampleConfig(t, dir)

	ctx, err := FromWorkingDir(dir)
	require.NoError(t, err)

	results := ctx.Update(context.Background(), []string{"nonexistent"})
	require.Empty(t, results)
}
