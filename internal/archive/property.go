package archive

import (
	"github.com/magiconair/properties"

	"github.com/mrepo-go/mrepo/internal/model"
)

// ManifestName is the well-known manifest file every module archive embeds
// at its root, in Java .properties format.
const ManifestName = "module.prop"

// ParseManifest decodes a module.prop byte stream into an Origin.
func ParseManifest(data []byte) (*model.Origin, error) {
	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, err
	}

	var origin model.Origin
	if err := props.Decode(&origin); err != nil {
		return nil, err
	}
	return &origin, nil
}
