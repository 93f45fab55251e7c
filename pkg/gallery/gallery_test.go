package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ylingene/gallery/pkg/errors"
	"github.com/ylingene/gallery/pkg/layout"
)

func sampleManifest() Manifest {
	return Manifest{
		Title:  "Iceland",
		Source: "photos/iceland",
		Images: []Image{
			{ID: "01.jpg", Width: 6000, Height: 4000, Alt: "glacier"},
			{ID: "02.jpg", Width: 4000, Height: 6000, Caption: "Reykjavik at dusk"},
			{ID: "03.jpg", Width: 3000, Height: 3000},
		},
	}
}

func TestManifestRoundTrip(t *testing.T) {
	m := sampleManifest()

	data, err := MarshalManifest(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalManifest(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Title != m.Title || len(got.Images) != len(m.Images) {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.Images[1].Caption != "Reykjavik at dusk" {
		t.Errorf("caption = %q", got.Images[1].Caption)
	}
}

func TestManifestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Manifest)
		wantCode errors.Code
	}{
		{"ZeroWidth", func(m *Manifest) { m.Images[0].Width = 0 }, errors.ErrCodeInvalidImage},
		{"NegativeHeight", func(m *Manifest) { m.Images[2].Height = -1 }, errors.ErrCodeInvalidImage},
		{"EmptyID", func(m *Manifest) { m.Images[1].ID = "" }, errors.ErrCodeInvalidImage},
		{"TraversalID", func(m *Manifest) { m.Images[1].ID = "../etc/passwd" }, errors.ErrCodeInvalidImage},
		{"DuplicateID", func(m *Manifest) { m.Images[1].ID = m.Images[0].ID }, errors.ErrCodeInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleManifest()
			tt.mutate(&m)
			err := m.Validate()
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() = %v, want code %s", err, tt.wantCode)
			}
		})
	}

	t.Run("EmptyManifestIsValid", func(t *testing.T) {
		if err := (Manifest{}).Validate(); err != nil {
			t.Errorf("empty manifest should validate, got %v", err)
		}
	})
}

func TestManifestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	m := sampleManifest()
	if err := WriteManifestFile(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadManifestFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Title != "Iceland" || len(got.Images) != 3 {
		t.Fatalf("unexpected manifest: %+v", got)
	}

	if _, err := ReadManifestFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("reading a missing file should error")
	}
}

func TestFromResultAttachesHintsAndFiller(t *testing.T) {
	m := Manifest{
		Title: "Squares",
		Images: []Image{
			{ID: "a", Width: 1000, Height: 1000},
			{ID: "b", Width: 1000, Height: 1000},
			{ID: "c", Width: 1000, Height: 1000},
			{ID: "d", Width: 1000, Height: 1000},
			{ID: "e", Width: 1000, Height: 1000},
		},
	}
	cfg := layout.DefaultConfig()
	cfg.TargetRowHeight = 400

	res, err := layout.Layout(1200, m.LayoutImages(), cfg)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	doc := FromResult(m, res, 1200, cfg)

	if doc.WidowCount != 2 || doc.Filler == nil {
		t.Fatalf("widows = %d, filler = %v", doc.WidowCount, doc.Filler)
	}
	if doc.Mobile {
		t.Error("desktop layout flagged as mobile")
	}

	// Width 1200 >= default desktop breakpoint: first six eager.
	for i, b := range doc.Boxes {
		want := "eager"
		if i >= 6 {
			want = "lazy"
		}
		if b.Load != want {
			t.Errorf("box %d load = %q, want %q", i, b.Load, want)
		}
	}
}

func TestLayoutDocRoundTripAndValidation(t *testing.T) {
	m := sampleManifest()
	cfg := layout.DefaultConfig()
	res, err := layout.Layout(1400, m.LayoutImages(), cfg)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	doc := FromResult(m, res, 1400, cfg)

	data, err := MarshalLayout(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ContainerWidth != 1400 || len(got.Boxes) != len(doc.Boxes) {
		t.Fatalf("round trip lost data: %+v", got)
	}

	t.Run("RejectsZeroWidth", func(t *testing.T) {
		bad := strings.Replace(string(data), `"container_width": 1400`, `"container_width": 0`, 1)
		if _, err := UnmarshalLayout([]byte(bad)); err == nil {
			t.Error("zero container width should be rejected")
		}
	})

	t.Run("FileHelpers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "layout.json")
		if err := WriteLayoutFile(doc, path); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("stat: %v", err)
		}
		got, err := ReadLayoutFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got.RowCount != doc.RowCount {
			t.Errorf("rowCount = %d, want %d", got.RowCount, doc.RowCount)
		}
	})
}
