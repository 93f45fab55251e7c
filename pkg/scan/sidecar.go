package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ylingene/gallery/pkg/errors"
)

// SidecarFilename is the metadata file looked up in the source directory.
const SidecarFilename = "gallery.toml"

// Sidecar holds optional gallery metadata loaded from gallery.toml.
//
// Example:
//
//	title = "Iceland 2024"
//
//	[images."fjord.jpg"]
//	alt = "A fjord at dusk"
//	caption = "Westfjords, day three"
type Sidecar struct {
	Title  string               `toml:"title"`
	Images map[string]ImageMeta `toml:"images"`
}

// ImageMeta is per-image metadata keyed by image ID.
type ImageMeta struct {
	Alt     string `toml:"alt"`
	Caption string `toml:"caption"`
}

// LoadSidecar reads gallery.toml from dir. Returns (nil, nil) when the file
// does not exist; metadata is optional.
func LoadSidecar(dir string) (*Sidecar, error) {
	path := filepath.Join(dir, SidecarFilename)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read gallery.toml")
	}

	var sc Sidecar
	meta, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse gallery.toml")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unknown keys in gallery.toml: %s", strings.Join(keys, ", "))
	}

	return &sc, nil
}
