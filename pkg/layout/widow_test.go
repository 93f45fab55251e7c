package layout

import (
	"math"
	"testing"
)

func TestWidowFillerArithmetic(t *testing.T) {
	widows := []Box{
		{Width: 300, Height: 400},
		{Width: 250, Height: 400},
	}

	f := WidowFiller(1200, widows, 10)

	// filler + widow widths + one gap per widow box == container width
	total := f.Width + 300 + 250 + 2*10
	if math.Abs(total-1200) > tol {
		t.Errorf("filler accounting = %v, want 1200", total)
	}
	if f.Height != 400 {
		t.Errorf("filler height = %v, want widow row height 400", f.Height)
	}
}

func TestWidowFillerEmpty(t *testing.T) {
	f := WidowFiller(1200, nil, 10)
	if f != (Filler{}) {
		t.Errorf("filler for no widows = %+v, want zero value", f)
	}
}

func TestWidowFillerFromLayout(t *testing.T) {
	cfg := testConfig()
	res, err := Layout(1200, squares(5, 1000), cfg)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	widows := res.Widows()
	if len(widows) != 2 {
		t.Fatalf("widows = %d, want 2", len(widows))
	}

	f := WidowFiller(1200, widows, cfg.BoxSpacing)
	var used float64
	for _, b := range widows {
		used += b.Width
	}
	if math.Abs(f.Width+used+float64(len(widows))*cfg.BoxSpacing-1200) > tol {
		t.Errorf("filler width %v does not complete the row", f.Width)
	}
	if f.Width <= 0 {
		t.Errorf("filler width = %v, want positive for an under-filled row", f.Width)
	}
}
