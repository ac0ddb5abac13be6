package port

import (
	"image/color"

	"bbox-annotator/internal/domain/entity"
)

// Renderer decodes source images into drawable canvases.
type Renderer interface {
	// Decode turns raw image bytes into a canvas owned by the caller
	Decode(data []byte) (Canvas, error)
}

// Canvas is a decoded pixel buffer that boxes are drawn onto in place.
type Canvas interface {
	// Size returns the canvas width and height in pixels
	Size() (width, height int)

	// DrawBox draws an unfilled rectangle outline between the two corners
	DrawBox(box entity.PixelBox, c color.RGBA, thickness int)

	// DrawLabel draws text with its baseline origin at (x, y)
	DrawLabel(text string, x, y int, c color.RGBA)

	// EncodeJPEG returns the canvas encoded as JPEG
	EncodeJPEG() ([]byte, error)

	// Close releases the pixel buffer
	Close() error
}
