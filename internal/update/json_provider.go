package update

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/archive"
	"github.com/mrepo-go/mrepo/internal/fetch"
	"github.com/mrepo-go/mrepo/internal/model"
)

// jsonProvider implements the update-json protocol: fetch a small pointer
// document declaring the latest version and where to download it, check
// whether it's actually newer before paying for the zip download, then
// fetch the zip and read its manifest.
type jsonProvider struct {
	*base
}

var _ Provider = (*jsonProvider)(nil)

func (p *jsonProvider) Update(ctx context.Context, module model.Module) bool {
	dir := p.moduleDir(module)
	timestamp := time.Now().UTC()

	pointer, ok := fetch.FetchJSON[model.UpdateJSON](ctx, p.fetcher, module.Provider)
	if !ok {
		log.Warn().Str("id", module.ID).Msg("update: fetch update-json pointer failed")
		return false
	}

	versions, ok := p.checkVersions(module, pointer.Version, pointer.VersionCode)
	if !ok {
		return false
	}

	zipTmp := filepath.Join(dir, tmpFile)
	h, err := p.fetcher.Get(ctx, pointer.ZipURL)
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

	return p.updateCommon(ctx, module, newOrigin, versions, timestamp, pointer.Changelog)
}
