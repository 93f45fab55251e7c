package gallery

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ylingene/gallery/pkg/errors"
	"github.com/ylingene/gallery/pkg/layout"
)

// Image describes one source image: its identity (the path relative to
// the gallery source directory), intrinsic pixel dimensions, and display
// metadata. Immutable once scanned.
type Image struct {
	ID      string  `json:"id"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Alt     string  `json:"alt,omitempty"`
	Caption string  `json:"caption,omitempty"`
}

// Manifest is the canonical description of a gallery: an ordered list of
// images plus site-facing metadata. It is the output of scanning and the
// input of layout computation.
type Manifest struct {
	Title  string  `json:"title,omitempty"`
	Source string  `json:"source,omitempty"` // directory the images were scanned from
	Images []Image `json:"images"`
}

// LayoutImages converts the manifest's images to layout engine inputs,
// preserving order.
func (m Manifest) LayoutImages() []layout.Image {
	out := make([]layout.Image, len(m.Images))
	for i, img := range m.Images {
		out[i] = layout.Image{ID: img.ID, Width: img.Width, Height: img.Height}
	}
	return out
}

// Validate checks every image descriptor. A manifest with zero images is
// valid; a manifest with a dimensionless image is not.
func (m Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Images))
	for _, img := range m.Images {
		if err := errors.ValidateImageID(img.ID); err != nil {
			return err
		}
		if seen[img.ID] {
			return errors.New(errors.ErrCodeInvalidImage, "duplicate image id %q", img.ID)
		}
		seen[img.ID] = true
		if img.Width <= 0 || img.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidImage,
				"invalid image descriptor %q: dimensions %vx%v", img.ID, img.Width, img.Height)
		}
	}
	return nil
}

// MarshalManifest serializes a Manifest to pretty-printed JSON bytes.
func MarshalManifest(m Manifest) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// UnmarshalManifest deserializes JSON bytes into a Manifest and validates
// every image descriptor.
func UnmarshalManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("unmarshal manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// WriteManifestFile writes a Manifest to a JSON file.
func WriteManifestFile(m Manifest, path string) error {
	data, err := MarshalManifest(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifestFile reads a Manifest from a JSON file.
func ReadManifestFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalManifest(data)
}
