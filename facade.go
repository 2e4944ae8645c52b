package mrepo

import (
	"context"
	"path/filepath"

	"github.com/mrepo-go/mrepo/internal/fetch"
	"github.com/mrepo-go/mrepo/internal/indexgen"
	"github.com/mrepo-go/mrepo/internal/update"
)

// Update runs the update engine against every configured module, or only
// those named in ids when ids is non-empty. It reports one Result per
// module attempted.
func (c *Context) Update(ctx context.Context, ids []string) []update.Result {
	engine := update.New(c.repository.Setting, c.modulesDir, fetch.New())
	return engine.UpdateAll(ctx, c.modules, ids)
}

// Upgrade publishes the consolidated index to <json_dir>/modules.json and
// reconciles modules_dir against the configured module list, returning the
// paths of anything it removed as no longer configured.
func (c *Context) Upgrade(pretty bool) ([]string, error) {
	return c.UpgradeTo(filepath.Join(c.jsonDir, ModulesJSON), pretty)
}

// UpgradeTo is Upgrade, writing the index to an explicit path instead of
// the default <json_dir>/modules.json.
func (c *Context) UpgradeTo(path string, pretty bool) ([]string, error) {
	gen := indexgen.New(c.repository, c.modulesDir)
	return gen.GenerateIndexTo(c.modules, path, pretty)
}

// FormatTo is Format, writing the reformatted config to an explicit path
// instead of rewriting the context's own config file in place.
func (c *Context) FormatTo(path string) bool {
	return formatTo(c.configPath, path)
}
