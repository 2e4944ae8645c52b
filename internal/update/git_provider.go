package update

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/archive"
	"github.com/mrepo-go/mrepo/internal/model"
	"github.com/mrepo-go/mrepo/internal/vcsclone"
)

// gitProvider implements the git protocol: clone the repository, package
// its working tree into a zip the same way the other two providers deal
// with archives, then continue through the same version check.
type gitProvider struct {
	*base
}

var _ Provider = (*gitProvider)(nil)

func (p *gitProvider) Update(ctx context.Context, module model.Module) bool {
	dir := p.moduleDir(module)
	dirTmp := filepath.Join(dir, tmpDir)
	zipTmp := filepath.Join(dir, tmpFile)

	timestamp, ok := vcsclone.Clone(ctx, module.Provider, dirTmp)
	if !ok {
		_ = os.RemoveAll(dirTmp)
		return false
	}

	newOrigin := archive.Package(dirTmp, zipTmp)
	_ = os.RemoveAll(dirTmp)
	if newOrigin == nil {
		log.Warn().Str("id", module.ID).Msg("update: package cloned tree failed")
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
