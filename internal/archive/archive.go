package archive

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/model"
)

// ReadManifest opens the zip archive at path and decodes its embedded
// module.prop. A missing archive, missing manifest entry, or malformed
// manifest all collapse to a nil Origin rather than a propagated error:
// callers treat an unreadable archive as "no module here".
func ReadManifest(path string) *model.Origin {
	r, err := zip.OpenReader(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("archive: open")
		return nil
	}
	defer r.Close()

	f, err := r.Open(ManifestName)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("archive: missing manifest")
		return nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("archive: read manifest")
		return nil
	}

	origin, err := ParseManifest(data)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("archive: parse manifest")
		return nil
	}
	return origin
}

// ReadDirManifest reads module.prop directly from a module's source
// directory (before it has been packaged), used when validating a local
// checkout or a freshly cloned git working tree.
func ReadDirManifest(dir string) *model.Origin {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil
	}
	origin, err := ParseManifest(data)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("archive: parse manifest")
		return nil
	}
	return origin
}

// Package zips the contents of dir into archivePath using the Stored
// (uncompressed) method, skipping any top-level entry whose name starts
// with a dot (.git, .gitignore, and similar VCS/editor artifacts). It
// returns the module's Origin read from dir's module.prop before
// packaging, so the caller can record identity without re-opening the
// archive it just wrote.
func Package(dir, archivePath string) *model.Origin {
	origin := ReadDirManifest(dir)
	if origin == nil {
		return nil
	}

	if err := packageDir(dir, archivePath); err != nil {
		log.Error().Err(err).Str("dir", dir).Str("archive", archivePath).Msg("archive: package")
		_ = os.Remove(archivePath)
		return nil
	}
	return origin
}

func packageDir(dir, archivePath string) error {
	if parent := filepath.Dir(archivePath); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("archive: create parent dir: %w", err)
		}
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", archivePath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)
		if firstComponentIsDotted(name) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			_, err := zw.CreateHeader(&zip.FileHeader{Name: name + "/", Method: zip.Store})
			return err
		}

		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
}

func firstComponentIsDotted(name string) bool {
	first, _, _ := strings.Cut(name, "/")
	return strings.HasPrefix(first, ".")
}
