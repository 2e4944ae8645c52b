package update

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mrepo-go/mrepo/internal/fetch"
	"github.com/mrepo-go/mrepo/internal/model"
)

// DefaultConcurrency bounds how many modules UpdateAll processes at once.
const DefaultConcurrency = 8

// Provider performs the protocol-specific half of updating one module: it
// fetches a candidate version, checks it against the existing track, and
// persists a new one when appropriate.
type Provider interface {
	Update(ctx context.Context, module model.Module) bool
}

// Engine dispatches each configured module to the Provider registered for
// its kind and fans work out across modules during UpdateAll.
type Engine struct {
	providers   map[model.ProviderKind]Provider
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency overrides DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New builds an Engine whose providers share setting, modulesDir, and
// fetcher.
func New(setting model.RepositorySetting, modulesDir string, fetcher *fetch.Fetcher, opts ...Option) *Engine {
	b := &base{setting: setting, modulesDir: modulesDir, fetcher: fetcher}
	e := &Engine{
		concurrency: DefaultConcurrency,
		providers: map[model.ProviderKind]Provider{
			model.ProviderUpdateJSON: &jsonProvider{base: b},
			model.ProviderZipURL:     &urlProvider{base: b},
			model.ProviderGit:        &gitProvider{base: b},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Update runs one module through its provider. A disabled module or an
// unregistered kind both return false without touching the filesystem.
func (e *Engine) Update(ctx context.Context, module model.Module) bool {
	log.Debug().Str("id", module.ID).Str("kind", string(module.Kind)).Msg("update: dispatch")
	if module.Setting.Disabled {
		return false
	}

	provider, ok := e.providers[module.Kind]
	if !ok {
		log.Error().Str("id", module.ID).Str("kind", string(module.Kind)).Msg("update: no provider registered for kind")
		return false
	}

	log.Info().Str("id", module.ID).Str("kind", string(module.Kind)).Msg("update: start")
	return provider.Update(ctx, module)
}

// Result reports one module's outcome from UpdateAll.
type Result struct {
	ID      string
	Success bool
}

// UpdateAll runs Update for every module in modules whose ID is in ids (or
// every module, when ids is empty), each in its own goroutine bounded by
// the engine's concurrency limit. Every task shares only the immutable
// modules slice and the engine's providers; there is no shared mutable
// state, so no further synchronization is required.
func (e *Engine) UpdateAll(ctx context.Context, modules []model.Module, ids []string) []Result {
	selected := modules
	if len(ids) > 0 {
		selected = make([]model.Module, 0, len(modules))
		for _, m := range modules {
			if slices.Contains(ids, m.ID) {
				selected = append(selected, m)
			}
		}
	}

	results := make([]Result, len(selected))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)

	for i, module := range selected {
		i, module := i, module
		group.Go(func() error {
			taskID := uuid.New()
			taskLog := log.With().Str("task", taskID.String()).Str("id", module.ID).Logger()
			taskLog.Info().Msg("update: task started")

			success := e.Update(groupCtx, module)
			results[i] = Result{ID: module.ID, Success: success}

			taskLog.Info().Bool("success", success).Msg("update: task finished")
			return nil
		})
	}

	// Every task above always returns nil: a provider failure is a Result,
	// not a goroutine error.
	_ = group.Wait()
	return results
}
