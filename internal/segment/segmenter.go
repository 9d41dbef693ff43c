// Package segment partitions a sprite sheet into individual animation frames.
// The primary strategy labels connected content regions over the sheet's alpha
// channel; when the detected region count disagrees with the expected layout,
// an equal-cell grid division takes over so that the returned frame count is
// always rows×columns.
package segment

import (
	"fmt"
	"image"
	"log"
	"sort"

	"github.com/vmaltsev/spritescene/internal/config"
	"github.com/vmaltsev/spritescene/internal/imaging"
	"github.com/vmaltsev/spritescene/internal/mask"
)

// Segmenter extracts animation frames from sprite sheets.
type Segmenter struct {
	cfg *config.Config
}

// NewSegmenter creates a segmenter with the given pipeline configuration.
func NewSegmenter(cfg *config.Config) *Segmenter {
	return &Segmenter{cfg: cfg}
}

// Segment partitions img into rows×columns frames and returns them in
// left-to-right, top-to-bottom order together with the uniform frame size.
// The frame order is the animation playback order.
//
// Single-row sheets go through connected-component extraction first; the grid
// division is used for true grids and whenever the component count disagrees
// with the expected layout. A malformed frame is preferred over a missing one,
// so the returned slice always holds exactly rows×columns frames.
func (s *Segmenter) Segment(img image.Image, rows, columns int) ([]*image.RGBA, int, int, error) {
	if img == nil {
		return nil, 0, 0, fmt.Errorf("no image supplied")
	}
	if rows < 1 || columns < 1 {
		return nil, 0, 0, fmt.Errorf("invalid frame layout %dx%d: rows and columns must be positive", rows, columns)
	}

	sheet := imaging.ToRGBA(img)
	if sheet.Bounds().Dx() == 0 || sheet.Bounds().Dy() == 0 {
		return nil, 0, 0, fmt.Errorf("image has zero width or height")
	}

	var regions []ComponentBox

	if rows == 1 {
		regions = s.segmentStrip(sheet, columns)
	} else {
		// Connected components are not attempted for true grids: diagonal
		// adjacency across row boundaries would merge frames together.
		regions = ExtractGrid(sheet, rows, columns, s.cfg.AlphaThreshold)
	}

	crops := make([]*image.RGBA, len(regions))
	for i, r := range regions {
		crops[i] = imaging.Crop(sheet, r.Rect())
	}

	frames, frameWidth, frameHeight := Normalize(crops)
	return frames, frameWidth, frameHeight, nil
}

// segmentStrip handles single-row sheets: component extraction with noise
// filtering, falling back to a 1×columns grid when the count is off.
func (s *Segmenter) segmentStrip(sheet *image.RGBA, columns int) []ComponentBox {
	m := mask.Derive(sheet, s.cfg.AlphaThreshold)
	components := FilterNoise(ExtractComponents(m), s.cfg.NoiseRatio)

	if len(components) != columns {
		log.Printf("[!] Detected %d components, expected %d frames; falling back to grid extraction", len(components), columns)
		return ExtractGrid(sheet, 1, columns, s.cfg.AlphaThreshold)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].Left < components[j].Left
	})
	return components
}
