package model

import "fmt"

// ProviderKind identifies the source a module is updated from.
type ProviderKind string

// The set of supported provider kinds. Git is always compiled in: unlike
// the upstream implementation this was translated from, the git client
// here is pure Go and carries no extra build-toolchain cost.
const (
	ProviderUpdateJSON ProviderKind = "update-json"
	ProviderZipURL      ProviderKind = "zip-url"
	ProviderGit         ProviderKind = "git"
)

func (k ProviderKind) valid() bool {
	switch k {
	case ProviderUpdateJSON, ProviderZipURL, ProviderGit:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects unknown provider kinds up front rather than letting
// an invalid token silently reach the update engine's dispatch switch.
func (k *ProviderKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := unmarshalString(data, &s); err != nil {
		return fmt.Errorf("model: provider kind: %w", err)
	}
	pk := ProviderKind(s)
	if !pk.valid() {
		return fmt.Errorf("model: unknown provider kind %q", s)
	}
	*k = pk
	return nil
}

// Config is the single declarative input file: sink options, repository
// identity/publishing settings, and the ordered list of tracked modules.
type Config struct {
	Log        Log        `json:"log"`
	Repository Repository `json:"repository"`
	Modules    []Module   `json:"modules" validate:"dive"`
}

// Log controls where and how diagnostics are emitted.
type Log struct {
	Disabled bool   `json:"disabled"`
	Level    string `json:"level"`
	Output   string `json:"output,omitempty"`
	// Timestamp defaults to true; DefaultLog applies that default before
	// a caller unmarshals into it, mirroring #[serde(default)] upstream.
	Timestamp bool `json:"timestamp"`
}

// DefaultLog returns the zero-value defaults applied before parsing, so
// that an absent `log` section in the configuration behaves the same way
// as an explicit `{"level":"info","timestamp":true}`.
func DefaultLog() Log {
	return Log{Level: "info", Timestamp: true}
}

// Repository describes the published module collection.
type Repository struct {
	Name     string             `json:"name"`
	Metadata RepositoryMetadata `json:"metadata,omitempty"`
	Setting  RepositorySetting  `json:"setting"`
}

// RepositoryMetadata holds optional descriptive links.
type RepositoryMetadata struct {
	Homepage string `json:"homepage,omitempty"`
	Donate   string `json:"donate,omitempty"`
	Support  string `json:"support,omitempty"`
}

// RepositorySetting holds publishing behavior shared by all modules unless
// overridden per module.
type RepositorySetting struct {
	BaseURL  string `json:"base_url"`
	KeepSize int    `json:"keep_size" validate:"gte=0"`
}

// DefaultRepositorySetting mirrors upstream's keep_size default of 3.
func DefaultRepositorySetting() RepositorySetting {
	return RepositorySetting{KeepSize: 3}
}

// Module is one configured tracked module.
type Module struct {
	ID        string         `json:"id" validate:"required"`
	Kind      ProviderKind   `json:"kind" validate:"required,oneof=update-json zip-url git"`
	Provider  string         `json:"provider"`
	Changelog string         `json:"changelog,omitempty"`
	Metadata  ModuleMetadata `json:"metadata,omitempty"`
	Setting   ModuleSetting  `json:"setting,omitempty"`
}

// ModuleMetadata holds optional descriptive fields taken from the
// configuration, never from the archive.
type ModuleMetadata struct {
	License  string `json:"license,omitempty"`
	Homepage string `json:"homepage,omitempty"`
	Source   string `json:"source,omitempty"`
	Donate   string `json:"donate,omitempty"`
	Support  string `json:"support,omitempty"`
}

// ModuleSetting overrides repository-wide behavior for one module.
type ModuleSetting struct {
	Disabled bool `json:"disabled,omitempty"`
	// KeepSize is a pointer so "unset" (fall back to the repository
	// default) is distinguishable from an explicit zero.
	KeepSize *int `json:"keep_size,omitempty" validate:"omitempty,gte=0"`
}

// EffectiveKeepSize returns the module's own keep_size if set, else the
// repository-wide default.
func (m Module) EffectiveKeepSize(repo RepositorySetting) int {
	if m.Setting.KeepSize != nil {
		return *m.Setting.KeepSize
	}
	return repo.KeepSize
}
