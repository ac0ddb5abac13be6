//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"bbox-annotator/internal/domain/entity"
	"bbox-annotator/internal/domain/port"
)

const labelFontScale = 0.5

// Renderer draws boxes with OpenCV.
type Renderer struct {
	Quality int
}

// NewRenderer creates an OpenCV renderer that encodes JPEG at quality.
func NewRenderer(quality int) *Renderer {
	return &Renderer{Quality: quality}
}

// Decode reads the image as-is, keeping its channel count and depth.
func (r *Renderer) Decode(data []byte) (port.Canvas, error) {
	mat, err := decodeToMat(data)
	if err != nil {
		return nil, err
	}
	return &matCanvas{mat: mat, quality: r.Quality}, nil
}

type matCanvas struct {
	mat     gocv.Mat
	quality int
}

var _ port.Renderer = (*Renderer)(nil)
var _ port.Canvas = (*matCanvas)(nil)

func (c *matCanvas) Size() (int, int) {
	return c.mat.Cols(), c.mat.Rows()
}

func (c *matCanvas) DrawBox(box entity.PixelBox, col color.RGBA, thickness int) {
	rect := image.Rect(box.XMin, box.YMin, box.XMax, box.YMax)
	gocv.Rectangle(&c.mat, rect, col, thickness)
}

func (c *matCanvas) DrawLabel(text string, x, y int, col color.RGBA) {
	gocv.PutText(&c.mat, text, image.Pt(x, y), gocv.FontHersheySimplex, labelFontScale, col, 1)
}

func (c *matCanvas) EncodeJPEG() ([]byte, error) {
	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, c.mat, []int{gocv.IMWriteJpegQuality, c.quality})
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

func (c *matCanvas) Close() error {
	return c.mat.Close()
}

// decodeToMat turns encoded bytes into a Mat.
func decodeToMat(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}
