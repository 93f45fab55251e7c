package layout_test

import (
	"fmt"

	"github.com/ylingene/gallery/pkg/layout"
)

func ExampleLayout() {
	images := []layout.Image{
		{ID: "one.jpg", Width: 1000, Height: 1000},
		{ID: "two.jpg", Width: 1000, Height: 1000},
		{ID: "three.jpg", Width: 1000, Height: 1000},
		{ID: "four.jpg", Width: 1000, Height: 1000},
		{ID: "five.jpg", Width: 1000, Height: 1000},
	}

	cfg := layout.DefaultConfig()
	cfg.TargetRowHeight = 400

	res, err := layout.Layout(1200, images, cfg)
	if err != nil {
		fmt.Println("layout:", err)
		return
	}

	fmt.Printf("boxes: %d\n", len(res.Boxes))
	fmt.Printf("rows: %d\n", res.RowCount)
	fmt.Printf("widows: %d\n", res.WidowCount)
	// Output:
	// boxes: 5
	// rows: 2
	// widows: 2
}

func ExampleWidowFiller() {
	images := []layout.Image{
		{ID: "a.jpg", Width: 1000, Height: 1000},
		{ID: "b.jpg", Width: 1000, Height: 1000},
		{ID: "c.jpg", Width: 1000, Height: 1000},
		{ID: "d.jpg", Width: 1000, Height: 1000},
		{ID: "e.jpg", Width: 1000, Height: 1000},
	}

	cfg := layout.DefaultConfig()
	cfg.TargetRowHeight = 400

	res, _ := layout.Layout(1200, images, cfg)
	filler := layout.WidowFiller(1200, res.Widows(), cfg.BoxSpacing)

	fmt.Printf("filler: %.0fx%.0f\n", filler.Width, filler.Height)
	// Output:
	// filler: 380x400
}
