package segment

// FilterNoise drops components whose area falls below ratio of the largest
// component's area. Anti-aliasing specks and leftovers from incomplete
// background removal form tiny components that are not real frames; real
// frames of one sheet are all within the same order of magnitude.
func FilterNoise(boxes []ComponentBox, ratio float64) []ComponentBox {
	if len(boxes) == 0 {
		return boxes
	}

	maxArea := 0
	for _, b := range boxes {
		if b.Area > maxArea {
			maxArea = b.Area
		}
	}

	minArea := ratio * float64(maxArea)

	kept := boxes[:0:0]
	for _, b := range boxes {
		if float64(b.Area) >= minArea {
			kept = append(kept, b)
		}
	}

	return kept
}
