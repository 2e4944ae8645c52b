package trackstore

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/model"
)

// FileName is the track record's well-known basename inside a module's
// directory under modules_dir.
const FileName = "track.json"

// Load reads moduleDir's track.json. A missing directory, missing file, or
// malformed JSON all collapse to (nil, false).
func Load(moduleDir string) (*model.Track, bool) {
	track, err := model.FromFile[model.Track](filepath.Join(moduleDir, FileName))
	if err != nil {
		log.Debug().Err(err).Str("dir", moduleDir).Msg("trackstore: load")
		return nil, false
	}
	return track, true
}

// Save pretty-writes track to moduleDir's track.json, creating moduleDir
// if necessary. The caller is responsible for removing any just-staged
// version artifacts when Save returns false, so that a failed write never
// leaves an artifact the track does not reference.
func Save(moduleDir string, track *model.Track) bool {
	if err := os.MkdirAll(moduleDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", moduleDir).Msg("trackstore: create module dir")
		return false
	}
	path := filepath.Join(moduleDir, FileName)
	if err := model.ToFile(path, track, true); err != nil {
		log.Error().Err(err).Str("path", path).Msg("trackstore: save")
		return false
	}
	return true
}
