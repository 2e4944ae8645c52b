package update

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/archive"
	"github.com/mrepo-go/mrepo/internal/model"
)

// urlProvider implements the zip-url protocol: no pointer document exists,
// so the zip itself must be downloaded before its manifest reveals whether
// it is actually a newer version.
type urlProvider struct {
	*base
}

var _ Provider = (*urlProvider)(nil)

func (p *urlProvider) Update(ctx context.Context, module model.Module) bool {
	dir := p.moduleDir(module)
	timestamp := time.Now().UTC()
	zipTmp := filepath.Join(dir, tmpFile)

	h, err := p.fetcher.Get(ctx, module.Provider)
	if err != nil || h == nil {
		log.Warn().Str("id", module.ID).Msg("update: fetch zip failed")
		return false
	}
	if lm, ok := h.LastModified(); ok {
		timestamp = lm
	}
	if !h.WriteFile(zipTmp) {
		_ = os.Remove(zipTmp)
		return false
	}

	newOrigin := archive.ReadManifest(zipTmp)
	if newOrigin == nil {
		_ = os.Remove(zipTmp)
		return false
	}

	versions, ok := p.checkVersions(module, newOrigin.Version, newOrigin.VersionCode)
	if !ok {
		_ = os.Remove(zipTmp)
		return false
	}

	return p.updateCommon(ctx, module, newOrigin, versions, timestamp, module.Changelog)
}
