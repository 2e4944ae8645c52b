package model

import (
	"path/filepath"
	"testing"
)

func TestToFileFromFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.json")

	track := Track{
		Module:   Origin{ID: "m1", Name: "M1", Version: "1.0 (10)", VersionCode: 10},
		Versions: []Version{NewVersion(100, "1.0 (10)", 10)},
	}

	if err := ToFile(path, track, true); err != nil {
		t.Fatalf("ToFile() error = %v", err)
	}

	got, err := FromFile[Track](path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if got.Module != track.Module {
		t.Errorf("Module = %+v, want %+v", got.Module, track.Module)
	}
}

func TestFromFileMissingIsError(t *testing.T) {
	_, err := FromFile[Track](filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected an error reading a missing file")
	}
}

func TestFromFileMalformedIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.json")
	if err := ToFile(path, "not an object", false); err != nil {
		t.Fatalf("ToFile() error = %v", err)
	}
	_, err := FromFile[Track](path)
	if err == nil {
		t.Error("expected an error parsing a malformed track")
	}
}
