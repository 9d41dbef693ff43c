package sprite

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/vmaltsev/spritescene/internal/imaging"
)

// FramePosition records where one frame landed on an assembled sheet.
type FramePosition struct {
	Frame  int `yaml:"frame"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Row    int `yaml:"row,omitempty"`
	Col    int `yaml:"col,omitempty"`
}

// SheetMeta describes an assembled sprite sheet: the fixed frame rectangle,
// overall dimensions, and the position of every frame. Animation consumers
// index frames positionally from this.
type SheetMeta struct {
	FrameCount  int             `yaml:"frame_count"`
	Rows        int             `yaml:"rows"`
	Columns     int             `yaml:"columns"`
	FrameWidth  int             `yaml:"frame_width"`
	FrameHeight int             `yaml:"frame_height"`
	Spacing     int             `yaml:"spacing"`
	SheetWidth  int             `yaml:"sheet_width"`
	SheetHeight int             `yaml:"sheet_height"`
	Frames      []FramePosition `yaml:"frames"`
}

// SheetBuilder assembles individual frames into sprite sheets.
type SheetBuilder struct{}

// Horizontal lays frames out in a single row with spacing pixels between
// them. Frames smaller than the common frame rectangle are centered inside
// their slot.
func (b *SheetBuilder) Horizontal(frames []*image.RGBA, spacing int) (*image.RGBA, *SheetMeta, error) {
	return b.assemble(frames, 1, len(frames), spacing)
}

// Grid lays frames out row-major across the given number of columns.
func (b *SheetBuilder) Grid(frames []*image.RGBA, columns int, spacing int) (*image.RGBA, *SheetMeta, error) {
	if columns < 1 {
		return nil, nil, fmt.Errorf("invalid column count %d", columns)
	}
	rows := (len(frames) + columns - 1) / columns
	return b.assemble(frames, rows, columns, spacing)
}

func (b *SheetBuilder) assemble(frames []*image.RGBA, rows, columns, spacing int) (*image.RGBA, *SheetMeta, error) {
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("no frames provided")
	}

	frameWidth, frameHeight := 0, 0
	for _, f := range frames {
		if w := f.Bounds().Dx(); w > frameWidth {
			frameWidth = w
		}
		if h := f.Bounds().Dy(); h > frameHeight {
			frameHeight = h
		}
	}

	sheetWidth := frameWidth*columns + spacing*(columns-1)
	sheetHeight := frameHeight*rows + spacing*(rows-1)
	sheet := image.NewRGBA(image.Rect(0, 0, sheetWidth, sheetHeight))

	positions := make([]FramePosition, 0, len(frames))
	for i, frame := range frames {
		row := i / columns
		col := i % columns

		if frame.Bounds().Dx() != frameWidth || frame.Bounds().Dy() != frameHeight {
			frame = imaging.CenterOn(frame, frameWidth, frameHeight)
		}

		x := col * (frameWidth + spacing)
		y := row * (frameHeight + spacing)
		target := image.Rect(x, y, x+frameWidth, y+frameHeight)
		draw.Draw(sheet, target, frame, frame.Bounds().Min, draw.Over)

		positions = append(positions, FramePosition{
			Frame:  i,
			X:      x,
			Y:      y,
			Width:  frameWidth,
			Height: frameHeight,
			Row:    row,
			Col:    col,
		})
	}

	meta := &SheetMeta{
		FrameCount:  len(frames),
		Rows:        rows,
		Columns:     columns,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Spacing:     spacing,
		SheetWidth:  sheetWidth,
		SheetHeight: sheetHeight,
		Frames:      positions,
	}

	return sheet, meta, nil
}
