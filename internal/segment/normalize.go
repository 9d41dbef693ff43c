package segment

import (
	"image"

	"github.com/vmaltsev/spritescene/internal/imaging"
)

// Normalize re-renders every frame onto a transparent canvas sized to the
// maximum width and height across all frames, center-aligned. Downstream
// animation consumers index a sheet by a single fixed frame rectangle, so all
// frames of one sheet must share dimensions. Content is positioned only, never
// scaled. Returns the normalized frames and the common canvas size.
func Normalize(frames []*image.RGBA) ([]*image.RGBA, int, int) {
	if len(frames) == 0 {
		return nil, 0, 0
	}

	maxWidth, maxHeight := 0, 0
	for _, f := range frames {
		if w := f.Bounds().Dx(); w > maxWidth {
			maxWidth = w
		}
		if h := f.Bounds().Dy(); h > maxHeight {
			maxHeight = h
		}
	}

	normalized := make([]*image.RGBA, len(frames))
	for i, f := range frames {
		normalized[i] = imaging.CenterOn(f, maxWidth, maxHeight)
	}

	return normalized, maxWidth, maxHeight
}
