// Package mask derives binary occupancy masks from the alpha channel of RGBA
// images. A mask is read-only once derived and is discarded after one
// segmentation call.
package mask

import "image"

// Mask is a width×height boolean grid, true where the source pixel holds
// visible content.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// Derive builds a mask from img: a cell is set iff the pixel's alpha exceeds
// threshold. Opaque images (alpha 255 everywhere) produce an all-true mask.
// The image must be origin-anchored, as produced by imaging.ToRGBA.
func Derive(img *image.RGBA, threshold uint8) *Mask {
	b := img.Bounds()
	m := &Mask{
		Width:  b.Dx(),
		Height: b.Dy(),
		bits:   make([]bool, b.Dx()*b.Dy()),
	}

	for y := 0; y < m.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+m.Width*4]
		for x := 0; x < m.Width; x++ {
			if row[x*4+3] > threshold {
				m.bits[y*m.Width+x] = true
			}
		}
	}

	return m
}

// At reports whether the cell at (x, y) holds content. Out-of-range
// coordinates are empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}
