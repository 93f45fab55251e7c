package layout

import (
	"math"
	"testing"
)

func TestPartitionRowsClosesOnOverflow(t *testing.T) {
	cfg := testConfig() // target 400, spacing 10

	// Three squares reach 1220 >= 1200 and close the row; the rest form
	// an open trailing row.
	rows := partitionRows(squares(5, 1000), 1200, cfg)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0].closed || len(rows[0].images) != 3 {
		t.Errorf("first row: closed=%v len=%d, want closed row of 3", rows[0].closed, len(rows[0].images))
	}
	if rows[1].closed || len(rows[1].images) != 2 {
		t.Errorf("second row: closed=%v len=%d, want open row of 2", rows[1].closed, len(rows[1].images))
	}
}

func TestPartitionRowsSingleWideImage(t *testing.T) {
	cfg := testConfig()

	// A panorama wider than the frame at target height closes a row alone.
	images := []Image{
		{ID: "pano", Width: 6000, Height: 1000},
		{ID: "sq", Width: 1000, Height: 1000},
	}
	rows := partitionRows(images, 1200, cfg)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0].closed || len(rows[0].images) != 1 {
		t.Errorf("panorama should close its own row, got closed=%v len=%d", rows[0].closed, len(rows[0].images))
	}
}

func TestJustifyRowExactFill(t *testing.T) {
	cfg := testConfig()
	rows := partitionRows(squares(3, 1000), 1200, cfg)
	if len(rows) != 1 || !rows[0].closed {
		t.Fatalf("unexpected partition: %+v", rows)
	}

	boxes, height := justifyRow(rows[0], 1200, cfg)

	var sum float64
	for _, b := range boxes {
		sum += b.Width
	}
	sum += float64(len(boxes)-1) * cfg.BoxSpacing
	if math.Abs(sum-1200) > tol {
		t.Errorf("justified row fills %v, want 1200", sum)
	}

	// 3 squares: height = (1200-20)/3 ≈ 393.33, scaled below target.
	want := (1200.0 - 20) / 3
	if math.Abs(height-want) > tol {
		t.Errorf("row height = %v, want %v", height, want)
	}
	for _, b := range boxes {
		if math.Abs(b.Height-height) > tol {
			t.Errorf("box height = %v, want uniform %v", b.Height, height)
		}
	}
}

func TestFitsTolerance(t *testing.T) {
	cfg := testConfig() // target 400, tol 0.25 → band [300, 500]

	tests := []struct {
		name   string
		images []Image
		frame  float64
		want   bool
	}{
		// 2 squares at 1200: scale (1200-10)/800 = 1.49 → height 595, out.
		{"TwoSquaresTooTall", squares(2, 1000), 1200, false},
		// 3 squares at 1250: scale (1250-20)/1200 = 1.025 → 410, in.
		{"ThreeSquaresNearTarget", squares(3, 1000), 1250, true},
		// Single square at 1200: height 1190, far out.
		{"LoneSquare", squares(1, 1000), 1200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := row{}
			for _, img := range tt.images {
				r.images = append(r.images, img)
				r.natural += cfg.TargetRowHeight * img.AspectRatio()
			}
			if got := fitsTolerance(r, tt.frame, cfg); got != tt.want {
				t.Errorf("fitsTolerance = %v, want %v", got, tt.want)
			}
		})
	}
}
