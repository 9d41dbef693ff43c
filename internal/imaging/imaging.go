// Package imaging holds the shared pixel plumbing of the pipeline: RGBA
// conversion, cropping, centered placement and content bound detection.
package imaging

import (
	"image"
	"image/draw"
)

// ToRGBA returns img as an *image.RGBA anchored at the origin with a packed
// stride. The input is returned as-is when it already satisfies that shape,
// otherwise it is redrawn onto a fresh buffer. Images without an alpha channel
// come out fully opaque.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		if b.Min.X == 0 && b.Min.Y == 0 && rgba.Stride == b.Dx()*4 {
			return rgba
		}
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Crop copies the region r of src into a new origin-anchored image.
func Crop(src *image.RGBA, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

// CenterOn pastes frame onto a fully transparent width×height canvas,
// center-aligned. Pixel content is positioned, never resampled.
func CenterOn(frame *image.RGBA, width, height int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	fb := frame.Bounds()
	offsetX := (width - fb.Dx()) / 2
	offsetY := (height - fb.Dy()) / 2

	target := image.Rect(offsetX, offsetY, offsetX+fb.Dx(), offsetY+fb.Dy())
	draw.Draw(canvas, target, frame, fb.Min, draw.Src)
	return canvas
}

// ContentBounds scans the region r of img and returns the tightest rectangle
// enclosing every pixel whose alpha exceeds threshold. The second return is
// false when the region holds no content at all.
func ContentBounds(img *image.RGBA, r image.Rectangle, threshold uint8) (image.Rectangle, bool) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return image.Rectangle{}, false
	}

	minX, minY := r.Max.X, r.Max.Y
	maxX, maxY := r.Min.X-1, r.Min.Y-1

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+r.Max.X*4]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[x*4+3] <= threshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
