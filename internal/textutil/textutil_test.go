package textutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"doctype", "<!DOCTYPE html>\n<html><body>404</body></html>", true},
		{"plain", "plain text", false},
		{"html with attrs", "<html lang=en>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHTML(tt.text); got != tt.want {
				t.Errorf("IsHTML(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsHTMLNonUTF8(t *testing.T) {
	invalid := string([]byte{0xff, 0xfe, 0xfd})
	if IsHTML(invalid) {
		t.Error("IsHTML() should be false for non-UTF-8 content")
	}
}

func TestIsHTMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "changelog.txt")
	if err := os.WriteFile(path, []byte("<html><body>404"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !IsHTMLFile(path) {
		t.Error("IsHTMLFile() = false, want true")
	}
}

func TestIsHTMLFileMissing(t *testing.T) {
	if IsHTMLFile(filepath.Join(t.TempDir(), "missing.txt")) {
		t.Error("IsHTMLFile() on a missing file should be false")
	}
}

func TestVersionDisplay(t *testing.T) {
	tests := []struct {
		name    string
		version string
		code    int64
		want    string
	}{
		{"plain", "1.0", 10, "1.0 (10)"},
		{"already annotated", "1.0 (10)", 10, "1.0 (10)"},
		{"annotated with extra text", "1.0 (build 10)", 10, "1.0 (build 10)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VersionDisplay(tt.version, tt.code); got != tt.want {
				t.Errorf("VersionDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionDisplayIsIdempotent(t *testing.T) {
	first := VersionDisplay("2.1", 42)
	second := VersionDisplay(first, 42)
	if first != second {
		t.Errorf("VersionDisplay() not idempotent: %q then %q", first, second)
	}
}
