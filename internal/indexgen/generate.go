package indexgen

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrepo-go/mrepo/internal/model"
	"github.com/mrepo-go/mrepo/internal/trackstore"
)

// modulesSubdir is the well-known directory name a module's public URLs
// are qualified against, e.g. "<base_url>/modules/<id>/<file>".
const modulesSubdir = "modules"

// Generator assembles the published index for a configured repository.
type Generator struct {
	repository model.Repository
	modulesDir string
	now        func() time.Time
}

// New builds a Generator rooted at modulesDir, publishing under
// repository's name/metadata/base_url.
func New(repository model.Repository, modulesDir string) *Generator {
	return &Generator{repository: repository, modulesDir: modulesDir, now: time.Now}
}

func (g *Generator) versionURL(id, basename string) string {
	return fmt.Sprintf("%s/%s/%s/%s", g.repository.Setting.BaseURL, modulesSubdir, id, basename)
}

func (g *Generator) indexVersion(id string, v model.Version) model.IndexVersion {
	changelog := ""
	if v.Changelog != "" {
		changelog = g.versionURL(id, v.Changelog)
	}
	return model.IndexVersion{
		Timestamp:   v.Timestamp,
		Version:     v.Version,
		VersionCode: v.VersionCode,
		ZipURL:      g.versionURL(id, v.ZipPath),
		Changelog:   changelog,
	}
}

func (g *Generator) indexModule(module model.Module, track *model.Track) model.IndexModule {
	versions := make([]model.IndexVersion, 0, len(track.Versions))
	for _, v := range track.Versions {
		versions = append(versions, g.indexVersion(module.ID, v))
	}
	return model.NewIndexModule(track.Module, module.Metadata, versions)
}

// generateModules reads each configured module's track and converts it
// into a published entry, skipping modules with no track on disk.
func (g *Generator) generateModules(modules []model.Module) []model.IndexModule {
	result := make([]model.IndexModule, 0, len(modules))
	for _, module := range modules {
		moduleDir := filepath.Join(g.modulesDir, module.ID)
		if _, err := os.Stat(moduleDir); err != nil {
			log.Warn().Str("id", module.ID).Msg("indexgen: no track found")
			continue
		}

		track, ok := trackstore.Load(moduleDir)
		if !ok {
			log.Error().Str("id", module.ID).Msg("indexgen: unreadable track")
			continue
		}

		result = append(result, g.indexModule(module, track))
	}
	return result
}

// GenerateIndexTo writes the published index for modules to path and
// reconciles modules_dir, returning the paths it removed.
func (g *Generator) GenerateIndexTo(modules []model.Module, path string, pretty bool) ([]string, error) {
	index := model.Index{
		Name:      g.repository.Name,
		Timestamp: g.now().UnixMilli(),
		Metadata:  g.repository.Metadata,
		Modules:   g.generateModules(modules),
	}

	if err := model.ToFile(path, index, pretty); err != nil {
		return nil, fmt.Errorf("indexgen: write index: %w", err)
	}

	removed := g.reconcile(modules)
	return removed, nil
}

// reconcile removes anything directly under modules_dir that is not a
// configured module: stray regular files outright, and directories whose
// name does not match a configured id, recursively.
func (g *Generator) reconcile(modules []model.Module) []string {
	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		ids = append(ids, m.ID)
	}

	entries, err := os.ReadDir(g.modulesDir)
	if err != nil {
		log.Error().Err(err).Str("dir", g.modulesDir).Msg("indexgen: read modules dir")
		return nil
	}

	var removed []string
	for _, entry := range entries {
		path := filepath.Join(g.modulesDir, entry.Name())
		if !entry.IsDir() {
			if err := os.Remove(path); err != nil {
				log.Error().Err(err).Str("path", path).Msg("indexgen: remove stray file")
				continue
			}
			removed = append(removed, path)
			continue
		}

		if slices.Contains(ids, entry.Name()) {
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("indexgen: remove orphan directory")
			continue
		}
		removed = append(removed, path)
	}
	return removed
}
