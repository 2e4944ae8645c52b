package trackstore

import (
	"path/filepath"
	"testing"

	"github.com/mrepo-go/mrepo/internal/model"
)

func sampleTrack() *model.Track {
	return &model.Track{
		Module: model.Origin{ID: "m1", Name: "M1", Version: "1.0", VersionCode: 10},
		Versions: []model.Version{
			model.NewVersion(1000, "1.0 (10)", 10),
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "m1")
	track := sampleTrack()

	if !Save(dir, track) {
		t.Fatal("Save() = false, want true")
	}

	got, ok := Load(dir)
	if !ok {
		t.Fatal("Load() ok = false, want true")
	}
	if got.Module.ID != "m1" || len(got.Versions) != 1 {
		t.Errorf("Load() = %+v, want matching sample track", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, ok := Load(filepath.Join(t.TempDir(), "missing")); ok {
		t.Error("Load() ok = true, want false")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := model.ToFile(filepath.Join(dir, FileName), "not-a-track", false); err != nil {
		t.Fatalf("ToFile() error = %v", err)
	}
	if _, ok := Load(dir); ok {
		t.Error("Load() ok = true, want false for malformed track")
	}
}
