package mrepo

import (
	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/model"
)

// Format re-serializes the configuration at path with stable key ordering
// and 2-space indentation, the canonical on-disk form a hand-edited
// config.json is reformatted into.
func Format(path string) bool {
	return formatTo(path, path)
}

// FormatTo parses the configuration at from and writes its canonical form
// to to, which may be the same path.
func FormatTo(from, to string) bool {
	return formatTo(from, to)
}

func formatTo(from, to string) bool {
	config, err := model.FromFile[model.Config](from)
	if err != nil {
		log.Error().Err(err).Str("path", from).Msg("mrepo: format: read config")
		return false
	}

	if err := model.ToFile(to, config, true); err != nil {
		log.Error().Err(err).Str("path", to).Msg("mrepo: format: write config")
		return false
	}
	return true
}

// Format rewrites the context's own config file in place.
func (c *Context) Format() bool {
	return formatTo(c.configPath, c.configPath)
}
