package model

// Index is the consolidated public listing written to
// <json_dir>/modules.json.
type Index struct {
	Name      string             `json:"name"`
	Timestamp int64              `json:"timestamp"`
	Metadata  RepositoryMetadata `json:"metadata,omitempty"`
	Modules   []IndexModule      `json:"modules"`
}

// IndexModule is one module entry in the published index. Identity fields
// come from the module's Origin (authoritative); Metadata comes from the
// configuration, never the archive.
type IndexModule struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	VersionCode int64          `json:"version_code"`
	Author      string         `json:"author"`
	Description string         `json:"description"`
	Metadata    ModuleMetadata `json:"metadata,omitempty"`
	Versions    []IndexVersion `json:"versions"`
}

// IndexVersion is one retained release with fully qualified download URLs.
type IndexVersion struct {
	Timestamp   int64  `json:"timestamp"`
	Version     string `json:"version"`
	VersionCode int64  `json:"version_code"`
	ZipURL      string `json:"zip_url"`
	Changelog   string `json:"changelog,omitempty"`
}

// NewIndexModule assembles a published module entry from its track and
// configuration-supplied metadata.
func NewIndexModule(origin Origin, metadata ModuleMetadata, versions []IndexVersion) IndexModule {
	return IndexModule{
		ID:          origin.ID,
		Name:        origin.Name,
		Version:     origin.Version,
		VersionCode: origin.VersionCode,
		Author:      origin.Author,
		Description: origin.Description,
		Metadata:    metadata,
		Versions:    versions,
	}
}
