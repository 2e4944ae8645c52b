package model

import "encoding/json"

// Origin is the identity metadata parsed from inside a module's archive.
// It is authoritative for identity, as opposed to the metadata an operator
// configures externally (see ModuleMetadata).
type Origin struct {
	ID          string `json:"id" properties:"id"`
	Name        string `json:"name" properties:"name"`
	Version     string `json:"version" properties:"version"`
	VersionCode int64  `json:"version_code" properties:"versionCode"`
	Author      string `json:"author" properties:"author"`
	Description string `json:"description" properties:"description"`
}

// UpdateJSON is a provider pointer document: enough information to decide
// whether a newer version exists and where to fetch it from. Field names
// accept both snake_case and a camelCase alias for version_code/zip_url.
type UpdateJSON struct {
	Version     string `json:"-"`
	VersionCode int64  `json:"-"`
	ZipURL      string `json:"-"`
	Changelog   string `json:"-"`
}

type updateJSONWire struct {
	Version          string  `json:"version"`
	VersionCode      *int64  `json:"version_code"`
	VersionCodeCamel *int64  `json:"versionCode"`
	ZipURL           *string `json:"zip_url"`
	ZipURLCamel      *string `json:"zipUrl"`
	Changelog        string  `json:"changelog"`
}

// UnmarshalJSON accepts either spelling for version_code/zip_url, preferring
// the snake_case form when both are present.
func (u *UpdateJSON) UnmarshalJSON(data []byte) error {
	var wire updateJSONWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	u.Version = wire.Version
	u.Changelog = wire.Changelog

	switch {
	case wire.VersionCode != nil:
		u.VersionCode = *wire.VersionCode
	case wire.VersionCodeCamel != nil:
		u.VersionCode = *wire.VersionCodeCamel
	}

	switch {
	case wire.ZipURL != nil:
		u.ZipURL = *wire.ZipURL
	case wire.ZipURLCamel != nil:
		u.ZipURL = *wire.ZipURLCamel
	}

	return nil
}

// MarshalJSON always emits the snake_case form.
func (u UpdateJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version     string `json:"version"`
		VersionCode int64  `json:"version_code"`
		ZipURL      string `json:"zip_url"`
		Changelog   string `json:"changelog"`
	}{u.Version, u.VersionCode, u.ZipURL, u.Changelog})
}

// MarshalRaw renders u in the strict camelCase form some downstream
// ecosystems require, rather than the snake_case MarshalJSON produces.
func MarshalRaw(u UpdateJSON) ([]byte, error) {
	return json.Marshal(struct {
		Version     string `json:"version"`
		VersionCode int64  `json:"versionCode"`
		ZipURL      string `json:"zipUrl"`
		Changelog   string `json:"changelog"`
	}{u.Version, u.VersionCode, u.ZipURL, u.Changelog})
}
