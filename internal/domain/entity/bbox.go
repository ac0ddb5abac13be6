package entity

import (
	"fmt"
	"regexp"
	"strconv"
)

// NormalizedScale is the side length of the normalized coordinate space.
const NormalizedScale = 1000

var bboxPattern = regexp.MustCompile(`<bbox>(\d+) (\d+) (\d+) (\d+)</bbox>`)

// BoundingBox is a box in normalized 0..1000 space, as emitted by the model.
// No ordering between the corners is enforced.
type BoundingBox struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// PixelBox is a BoundingBox rescaled to image pixels.
type PixelBox struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// Rescale maps the box onto an image of the given size. Every coordinate is
// scaled and truncated on its own, so XMin may end up above XMax.
func (b BoundingBox) Rescale(width, height int) PixelBox {
	return PixelBox{
		XMin: b.X1 * width / NormalizedScale,
		YMin: b.Y1 * height / NormalizedScale,
		XMax: b.X2 * width / NormalizedScale,
		YMax: b.Y2 * height / NormalizedScale,
	}
}

// Label returns the caption drawn next to the box at index i.
func Label(i int) string {
	return fmt.Sprintf("Box %d", i+1)
}

// ParseBoxes extracts every <bbox>x1 y1 x2 y2</bbox> tag from text in
// left-to-right order. Text outside the tags is ignored.
func ParseBoxes(text string) ([]BoundingBox, error) {
	matches := bboxPattern.FindAllStringSubmatch(text, -1)
	boxes := make([]BoundingBox, 0, len(matches))
	for _, m := range matches {
		var coords [4]int
		for i := range coords {
			v, err := strconv.ParseInt(m[i+1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("bbox %q: %w", m[0], err)
			}
			coords[i] = int(v)
		}
		boxes = append(boxes, BoundingBox{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]})
	}
	return boxes, nil
}
