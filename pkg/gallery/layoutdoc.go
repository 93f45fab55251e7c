package gallery

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ylingene/gallery/pkg/layout"
)

// Box is the serialized form of one allocated rectangle.
type Box struct {
	ID          string  `json:"id"`
	Left        float64 `json:"left"`
	Top         float64 `json:"top"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Load        string  `json:"load"` // "eager" or "lazy"
	Alt         string  `json:"alt,omitempty"`
	Caption     string  `json:"caption,omitempty"`
}

// Filler is the serialized widow filler geometry. Present only when the
// layout has a widow row.
type Filler struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutDoc captures one layout computation for one container width.
// Boxes preserves manifest image order. It is the unified input for all
// render sinks and the unit of layout caching.
type LayoutDoc struct {
	Title          string  `json:"title,omitempty"`
	ContainerWidth float64 `json:"container_width"`
	ContentHeight  float64 `json:"content_height"`
	RowCount       int     `json:"row_count"`
	WidowCount     int     `json:"widow_count"`
	Mobile         bool    `json:"mobile,omitempty"` // single-column fallback was used
	Boxes          []Box   `json:"boxes"`
	Filler         *Filler `json:"filler,omitempty"`
}

// FromResult converts an engine result into its serialization format,
// attaching load hints and widow filler geometry. The manifest supplies
// the title and must be the same one the layout was computed from.
func FromResult(m Manifest, res layout.Result, containerWidth float64, cfg layout.Config) LayoutDoc {
	doc := LayoutDoc{
		Title:          m.Title,
		ContainerWidth: containerWidth,
		ContentHeight:  res.ContentHeight,
		RowCount:       res.RowCount,
		WidowCount:     res.WidowCount,
		Mobile:         containerWidth <= cfg.MobileBreakpoint,
		Boxes:          make([]Box, len(res.Boxes)),
	}

	for i, b := range res.Boxes {
		box := Box{
			ID:          b.ID,
			Left:        b.Left,
			Top:         b.Top,
			Width:       b.Width,
			Height:      b.Height,
			AspectRatio: b.AspectRatio,
			Load:        string(layout.LoadHintAt(containerWidth, i, cfg.DesktopBreakpoint)),
		}
		// Boxes preserve manifest order, so metadata aligns by index.
		if i < len(m.Images) {
			box.Alt = m.Images[i].Alt
			box.Caption = m.Images[i].Caption
		}
		doc.Boxes[i] = box
	}

	if widows := res.Widows(); len(widows) > 0 {
		f := layout.WidowFiller(containerWidth, widows, cfg.BoxSpacing)
		doc.Filler = &Filler{Width: f.Width, Height: f.Height}
	}

	return doc
}

// MarshalLayout serializes a LayoutDoc to pretty-printed JSON bytes.
func MarshalLayout(doc LayoutDoc) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a LayoutDoc.
// Validates the structural invariants the engine guarantees.
func UnmarshalLayout(data []byte) (LayoutDoc, error) {
	var doc LayoutDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return LayoutDoc{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if doc.ContainerWidth <= 0 {
		return LayoutDoc{}, fmt.Errorf("layout must record a positive container width")
	}
	if doc.WidowCount < 0 || (len(doc.Boxes) > 0 && doc.WidowCount >= len(doc.Boxes)) {
		return LayoutDoc{}, fmt.Errorf("widow count %d out of range for %d boxes", doc.WidowCount, len(doc.Boxes))
	}
	if doc.WidowCount > 0 && doc.Filler == nil {
		return LayoutDoc{}, fmt.Errorf("layout with widows must carry filler geometry")
	}

	return doc, nil
}

// WriteLayoutFile writes a LayoutDoc to a JSON file.
func WriteLayoutFile(doc LayoutDoc, path string) error {
	data, err := MarshalLayout(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a LayoutDoc from a JSON file.
func ReadLayoutFile(path string) (LayoutDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutDoc{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
