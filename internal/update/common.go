package update

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/fetch"
	"github.com/mrepo-go/mrepo/internal/model"
	"github.com/mrepo-go/mrepo/internal/textutil"
	"github.com/mrepo-go/mrepo/internal/trackstore"
)

const (
	tmpFile = "tmp"
	tmpDir  = "tmp.d"
)

// base holds the state shared by every provider implementation: where
// modules live on disk, the repository-wide retention default, and the
// fetcher used for every HTTP round trip.
type base struct {
	setting    model.RepositorySetting
	modulesDir string
	fetcher    *fetch.Fetcher
}

func (b *base) moduleDir(module model.Module) string {
	return filepath.Join(b.modulesDir, module.ID)
}

// checkVersions compares a candidate version against the module's current
// track. ok is false when the candidate is not newer than what's tracked
// already (version_code >= the tracked one); when ok is true, it returns
// the existing versions newest-first, ready to have the new one prepended.
func (b *base) checkVersions(module model.Module, version string, versionCode int64) ([]model.Version, bool) {
	track, found := trackstore.Load(b.moduleDir(module))
	if !found {
		log.Info().Str("id", module.ID).Str("version", textutil.VersionDisplay(version, versionCode)).
			Msg("update: new version found")
		return []model.Version{}, true
	}

	if track.Module.VersionCode >= versionCode {
		log.Info().Str("id", module.ID).Msg("update: already latest version")
		return nil, false
	}

	versions := append([]model.Version(nil), track.Versions...)
	sort.Slice(versions, func(i, j int) bool { return versions[i].VersionCode > versions[j].VersionCode })

	log.Info().Str("id", module.ID).Str("version", textutil.VersionDisplay(version, versionCode)).
		Msg("update: new version found")
	return versions, true
}

func (b *base) keepSize(module model.Module) int {
	size := module.EffectiveKeepSize(b.setting)
	log.Debug().Str("id", module.ID).Int("keep_size", size).Msg("update: keep_size")
	return size
}

func (b *base) removeOld(module model.Module, old []model.Version) {
	dir := b.moduleDir(module)
	for _, v := range old {
		_ = os.Remove(filepath.Join(dir, v.ZipPath))
		_ = os.Remove(filepath.Join(dir, v.Changelog))
	}
}

func (b *base) writeTrack(module model.Module, track *model.Track) bool {
	if trackstore.Save(b.moduleDir(module), track) {
		return true
	}

	log.Error().Str("id", module.ID).Msg("update: write track failed, cleaning up staged artifacts")
	version := track.Versions[0]
	dir := b.moduleDir(module)
	_ = os.Remove(filepath.Join(dir, version.ZipPath))
	_ = os.Remove(filepath.Join(dir, version.Changelog))
	return false
}

// fetchChangelog downloads url to path, treating an empty url the same as
// a failed fetch: no changelog is written.
func (b *base) fetchChangelog(ctx context.Context, url, path string) bool {
	if url == "" {
		return false
	}
	h, err := b.fetcher.Get(ctx, url)
	if err != nil || h == nil {
		return false
	}
	return h.WriteFile(path)
}

// updateCommon finalizes a successful fetch shared by every provider:
// stage the zip into its versioned filename, fetch and sniff the
// changelog, prepend the new version, evict anything beyond keep_size, and
// persist the track.
func (b *base) updateCommon(ctx context.Context, module model.Module, newOrigin *model.Origin, versions []model.Version, timestamp time.Time, changelogURL string) bool {
	dir := b.moduleDir(module)
	zipTmp := filepath.Join(dir, tmpFile)

	display := textutil.VersionDisplay(newOrigin.Version, newOrigin.VersionCode)
	version := model.NewVersion(timestamp.UnixMilli(), display, newOrigin.VersionCode)

	if err := os.Rename(zipTmp, filepath.Join(dir, version.ZipPath)); err != nil {
		log.Error().Err(err).Str("id", module.ID).Msg("update: stage zip")
		_ = os.Remove(zipTmp)
		return false
	}

	changelogPath := filepath.Join(dir, version.Changelog)
	if ok := b.fetchChangelog(ctx, changelogURL, changelogPath); !ok || textutil.IsHTMLFile(changelogPath) {
		version.Changelog = ""
		_ = os.Remove(changelogPath)
	}

	versions = append([]model.Version{version}, versions...)
	if keep := b.keepSize(module); len(versions) > keep {
		old := versions[keep:]
		versions = versions[:keep]
		b.removeOld(module, old)
	}

	track := &model.Track{Module: *newOrigin, Versions: versions}
	return b.writeTrack(module, track)
}
