package segment

import (
	"image"
	"log"

	"github.com/vmaltsev/spritescene/internal/imaging"
)

// ExtractGrid divides img into rows×columns equal cells and returns one
// region per cell in row-major order. Cell sizes truncate: remainder pixels on
// the right and bottom edges stay outside the grid rather than being spread
// across cells. Each region is the tight content bounding box inside its own
// cell; a cell without content keeps its full extent so that an empty frame
// still yields a valid region.
func ExtractGrid(img *image.RGBA, rows, columns int, threshold uint8) []ComponentBox {
	b := img.Bounds()
	cellWidth := b.Dx() / columns
	cellHeight := b.Dy() / rows

	boxes := make([]ComponentBox, 0, rows*columns)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			cell := image.Rect(
				col*cellWidth,
				row*cellHeight,
				(col+1)*cellWidth,
				(row+1)*cellHeight,
			)

			bounds, ok := imaging.ContentBounds(img, cell, threshold)
			if !ok {
				log.Printf("[!] Grid cell (%d,%d) has no content, keeping full cell bounds", row, col)
				bounds = cell
			}

			boxes = append(boxes, ComponentBox{
				ID:     len(boxes) + 1,
				Left:   bounds.Min.X,
				Top:    bounds.Min.Y,
				Right:  bounds.Max.X,
				Bottom: bounds.Max.Y,
				Area:   bounds.Dx() * bounds.Dy(),
			})
		}
	}

	return boxes
}
