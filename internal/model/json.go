package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func unmarshalString(data []byte, s *string) error {
	return json.Unmarshal(data, s)
}

// configAlias lets Config.UnmarshalJSON decode without recursing back into
// itself, while still starting from field-level defaults the way
// upstream's #[serde(default)] attributes did.
type configAlias Config

// UnmarshalJSON applies defaults for omitted sections before decoding, so
// that a configuration lacking a "log" or "repository.setting" section
// behaves the same as one that spells out the defaults explicitly.
func (c *Config) UnmarshalJSON(data []byte) error {
	aux := configAlias{
		Log: DefaultLog(),
		Repository: Repository{
			Setting: DefaultRepositorySetting(),
		},
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("model: decode config: %w", err)
	}
	*c = Config(aux)
	return nil
}

// Validate runs struct-tag validation over the configuration. It is called
// once after a Config is loaded; a failure is a startup error.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("model: invalid configuration: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Modules))
	for _, m := range c.Modules {
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("model: invalid configuration: duplicate module id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// FromFile decodes a JSON document of type T from path.
func FromFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("model: parse %s: %w", path, err)
	}
	return &v, nil
}

// ToFile writes v as JSON to path, creating the file (or truncating an
// existing one). This is a plain create+write, not an atomic rename: a
// crash mid-write leaves a partial file, which callers tolerate by
// treating an unparsable track as absent.
func ToFile(path string, v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("model: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("model: write %s: %w", path, err)
	}
	return nil
}
