package segment

import (
	"image"
	"image/color"
	"testing"
)

func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtractGridRemainderPixelsDropped(t *testing.T) {
	// 103px wide at 4 columns truncates to 25px cells; the last 3px of the
	// sheet fall outside every cell.
	img := solidRGBA(103, 50, color.RGBA{R: 255, A: 255})

	boxes := ExtractGrid(img, 1, 4, 10)
	if len(boxes) != 4 {
		t.Fatalf("Expected 4 regions, got %d", len(boxes))
	}

	for i, b := range boxes {
		wantLeft := i * 25
		wantRight := (i + 1) * 25
		if b.Left != wantLeft || b.Right != wantRight {
			t.Errorf("Cell %d: expected x span [%d,%d), got [%d,%d)", i, wantLeft, wantRight, b.Left, b.Right)
		}
	}
}

func TestExtractGridEmptyCellKeepsFullExtent(t *testing.T) {
	// Content only in the left cell; the right cell must still produce a
	// region covering its full extent.
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 10; y < 40; y++ {
		for x := 10; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	boxes := ExtractGrid(img, 1, 2, 10)
	if len(boxes) != 2 {
		t.Fatalf("Expected 2 regions, got %d", len(boxes))
	}

	if boxes[0].Left != 10 || boxes[0].Top != 10 || boxes[0].Right != 40 || boxes[0].Bottom != 40 {
		t.Errorf("Left cell should be tight around content, got %+v", boxes[0])
	}
	if boxes[1].Left != 50 || boxes[1].Top != 0 || boxes[1].Right != 100 || boxes[1].Bottom != 50 {
		t.Errorf("Empty right cell should keep full extent, got %+v", boxes[1])
	}
}

func TestExtractGridRowMajorOrder(t *testing.T) {
	// One dot per quadrant; regions must come back top-left, top-right,
	// bottom-left, bottom-right.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	dots := []image.Point{{10, 20}, {60, 20}, {10, 70}, {60, 70}}
	for _, d := range dots {
		img.SetRGBA(d.X, d.Y, color.RGBA{G: 255, A: 255})
	}

	boxes := ExtractGrid(img, 2, 2, 10)
	if len(boxes) != 4 {
		t.Fatalf("Expected 4 regions, got %d", len(boxes))
	}

	for i, d := range dots {
		if boxes[i].Left != d.X || boxes[i].Top != d.Y {
			t.Errorf("Region %d: expected content at (%d,%d), got (%d,%d)", i, d.X, d.Y, boxes[i].Left, boxes[i].Top)
		}
	}
}
