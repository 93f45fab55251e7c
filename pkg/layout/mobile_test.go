package layout

import (
	"math"
	"testing"
)

func TestLayoutMobileBoxes(t *testing.T) {
	tests := []struct {
		name       string
		width      float64
		img        Image
		wantHeight float64
	}{
		{"Landscape", 400, Image{ID: "l", Width: 800, Height: 600}, 300},
		{"Portrait", 400, Image{ID: "p", Width: 600, Height: 800}, 400.0 * 800 / 600},
		{"Square", 320, Image{ID: "s", Width: 1000, Height: 1000}, 320},
		{"Panorama", 480, Image{ID: "w", Width: 3000, Height: 1000}, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxes := LayoutMobile(tt.width, []Image{tt.img})
			if len(boxes) != 1 {
				t.Fatalf("boxes = %d, want 1", len(boxes))
			}
			b := boxes[0]
			if b.Width != tt.width {
				t.Errorf("width = %v, want %v", b.Width, tt.width)
			}
			if math.Abs(b.Height-tt.wantHeight) > tol {
				t.Errorf("height = %v, want %v", b.Height, tt.wantHeight)
			}
		})
	}
}

func TestLayoutMobileStacksVertically(t *testing.T) {
	images := []Image{
		{ID: "a", Width: 100, Height: 100},
		{ID: "b", Width: 100, Height: 200},
		{ID: "c", Width: 200, Height: 100},
	}

	boxes := LayoutMobile(300, images)
	if len(boxes) != 3 {
		t.Fatalf("boxes = %d, want 3", len(boxes))
	}

	var y float64
	for i, b := range boxes {
		if b.Left != 0 {
			t.Errorf("box %d left = %v, want 0", i, b.Left)
		}
		if math.Abs(b.Top-y) > tol {
			t.Errorf("box %d top = %v, want %v", i, b.Top, y)
		}
		y += b.Height + DefaultBoxSpacing
	}
}

func TestLayoutMobileEmpty(t *testing.T) {
	if boxes := LayoutMobile(300, nil); len(boxes) != 0 {
		t.Errorf("boxes = %d, want 0", len(boxes))
	}
}
