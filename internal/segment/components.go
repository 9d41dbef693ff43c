package segment

import (
	"image"

	"github.com/vmaltsev/spritescene/internal/mask"
)

// ComponentBox is the bounding box of one connected content region, in pixel
// coordinates with Right and Bottom exclusive. Area is the rectangular area of
// the box, an upper bound on the occupied pixel count; the coarser measure is
// kept on purpose so that tie-breaks stay cheap and stable.
type ComponentBox struct {
	ID     int
	Left   int
	Top    int
	Right  int
	Bottom int
	Area   int
}

// Width returns the box width in pixels.
func (b ComponentBox) Width() int { return b.Right - b.Left }

// Height returns the box height in pixels.
func (b ComponentBox) Height() int { return b.Bottom - b.Top }

// Rect returns the box as an image.Rectangle.
func (b ComponentBox) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// ExtractComponents labels every 8-connected occupied region of m and returns
// one bounding box per region. Diagonal adjacency joins regions so that
// disjoint-looking sprite parts (limbs, accessories) merge into one sprite.
// Components come back in discovery order; callers sort as needed.
func ExtractComponents(m *mask.Mask) []ComponentBox {
	visited := make([]bool, m.Width*m.Height)
	var boxes []ComponentBox

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) || visited[y*m.Width+x] {
				continue
			}
			box := floodFill(m, visited, x, y)
			box.ID = len(boxes) + 1
			boxes = append(boxes, box)
		}
	}

	return boxes
}

// floodFill walks one component with an explicit stack and returns its
// bounding box.
func floodFill(m *mask.Mask, visited []bool, startX, startY int) ComponentBox {
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	stack := []image.Point{{X: startX, Y: startY}}
	visited[startY*m.Width+startX] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		// 8-neighborhood, diagonals included
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if !m.At(nx, ny) || visited[ny*m.Width+nx] {
					continue
				}
				visited[ny*m.Width+nx] = true
				stack = append(stack, image.Point{X: nx, Y: ny})
			}
		}
	}

	width := maxX - minX + 1
	height := maxY - minY + 1

	return ComponentBox{
		Left:   minX,
		Top:    minY,
		Right:  maxX + 1,
		Bottom: maxY + 1,
		Area:   width * height,
	}
}
