// Package sprite prepares AI-generated character art for segmentation:
// removing flat backgrounds, cropping dead space, and assembling processed
// frames back into game-ready sheets.
package sprite

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/vmaltsev/spritescene/internal/config"
	"github.com/vmaltsev/spritescene/internal/imaging"
)

// Remover strips solid backgrounds from sprite images by zeroing the alpha of
// matching pixels. Generated sprite sheets typically arrive on a flat white or
// single-color backdrop that must go before the alpha-based segmenter can see
// the frames.
type Remover struct {
	// WhiteThreshold marks a pixel as background when all RGB channels are at
	// or above it.
	WhiteThreshold uint8
	// Tolerance is the per-channel distance allowed when removing an explicit
	// background color.
	Tolerance int
	// CropPadding is the transparent border kept by AutoCrop.
	CropPadding int
}

// NewRemover creates a Remover from the pipeline configuration.
func NewRemover(cfg *config.Config) *Remover {
	return &Remover{
		WhiteThreshold: cfg.WhiteThreshold,
		Tolerance:      cfg.ColorTolerance,
		CropPadding:    cfg.CropPadding,
	}
}

// RemoveBackground clears every white-ish pixel: alpha drops to zero wherever
// all three color channels reach WhiteThreshold. Returns a new RGBA image.
func (r *Remover) RemoveBackground(img image.Image) *image.RGBA {
	return r.remove(img, func(red, green, blue uint8) bool {
		return red >= r.WhiteThreshold && green >= r.WhiteThreshold && blue >= r.WhiteThreshold
	})
}

// RemoveColor clears every pixel within Tolerance of bg on all three
// channels. Returns a new RGBA image.
func (r *Remover) RemoveColor(img image.Image, bg color.RGBA) *image.RGBA {
	return r.remove(img, func(red, green, blue uint8) bool {
		return channelDiff(red, bg.R) <= r.Tolerance &&
			channelDiff(green, bg.G) <= r.Tolerance &&
			channelDiff(blue, bg.B) <= r.Tolerance
	})
}

func (r *Remover) remove(img image.Image, isBackground func(red, green, blue uint8) bool) *image.RGBA {
	src := imaging.ToRGBA(img)
	b := src.Bounds()

	dst := image.NewRGBA(b)
	copy(dst.Pix, src.Pix)

	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			if isBackground(row[x*4], row[x*4+1], row[x*4+2]) {
				row[x*4+3] = 0
			}
		}
	}

	return dst
}

// AutoCrop trims transparent borders, keeping CropPadding pixels of margin
// clamped to the image edges. A fully transparent image comes back unchanged.
func (r *Remover) AutoCrop(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	bounds, ok := imaging.ContentBounds(img, b, 0)
	if !ok {
		return img
	}

	if r.CropPadding > 0 {
		bounds = image.Rect(
			max(b.Min.X, bounds.Min.X-r.CropPadding),
			max(b.Min.Y, bounds.Min.Y-r.CropPadding),
			min(b.Max.X, bounds.Max.X+r.CropPadding),
			min(b.Max.Y, bounds.Max.Y+r.CropPadding),
		)
	}

	return imaging.Crop(img, bounds)
}

// Process runs the full cleanup: background removal, auto-crop, and an
// optional resize to targetWidth×targetHeight. Pass zero dimensions to keep
// the cropped size. Resizing uses Catmull-Rom resampling to keep sprite edges
// clean.
func (r *Remover) Process(img image.Image, targetWidth, targetHeight int) *image.RGBA {
	processed := r.AutoCrop(r.RemoveBackground(img))

	if targetWidth <= 0 || targetHeight <= 0 {
		return processed
	}

	resized := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), processed, processed.Bounds(), xdraw.Src, nil)
	return resized
}

func channelDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
