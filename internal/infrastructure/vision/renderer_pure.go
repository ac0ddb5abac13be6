//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"bbox-annotator/internal/domain/entity"
	"bbox-annotator/internal/domain/port"
)

// Renderer draws boxes in pure Go, without OpenCV.
type Renderer struct {
	Quality int
}

// NewRenderer creates a pure Go renderer that encodes JPEG at quality.
func NewRenderer(quality int) *Renderer {
	return &Renderer{Quality: quality}
}

// Decode decodes JPEG, PNG, GIF, BMP, TIFF and WebP images.
func (r *Renderer) Decode(data []byte) (port.Canvas, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}
	return &imageCanvas{img: opaqueClone(img), gray: isGray(img), quality: r.Quality}, nil
}

// opaqueClone copies img to NRGBA and drops the alpha channel while keeping
// the color channels as stored, the way a BGRA to BGR conversion does.
func opaqueClone(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// isGray reports whether img has a single channel.
func isGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	return false
}

// decodeImage tries the registered decoders and falls back to libwebp for
// WebP variants the pure Go decoder rejects.
func decodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}
	if isWebP(data) {
		if img, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("decode image: %w", err)
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

type imageCanvas struct {
	img *image.NRGBA
	// gray canvases paint with the first (blue) component of a color only,
	// as OpenCV does on single-channel images
	gray    bool
	quality int
}

var _ port.Renderer = (*Renderer)(nil)
var _ port.Canvas = (*imageCanvas)(nil)

func (c *imageCanvas) paint(col color.RGBA) color.NRGBA {
	if c.gray {
		return color.NRGBA{R: col.B, G: col.B, B: col.B, A: 0xff}
	}
	return color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0xff}
}

func (c *imageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// DrawBox strokes the outline centered on the box edges, the way OpenCV
// lays out thick lines. Corners may be given in any order.
func (c *imageCanvas) DrawBox(box entity.PixelBox, col color.RGBA, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	x0, x1 := minMax(box.XMin, box.XMax)
	y0, y1 := minMax(box.YMin, box.YMax)

	lo := -(thickness / 2)
	hi := lo + thickness - 1
	nc := c.paint(col)

	for d := lo; d <= hi; d++ {
		drawHLine(c.img, y0+d, x0+lo, x1+hi, nc)
		drawHLine(c.img, y1+d, x0+lo, x1+hi, nc)
		drawVLine(c.img, x0+d, y0+lo, y1+hi, nc)
		drawVLine(c.img, x1+d, y0+lo, y1+hi, nc)
	}
}

// DrawLabel draws text with the 7x13 bitmap face. Pixels falling outside
// the image are clipped.
func (c *imageCanvas) DrawLabel(text string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.paint(col)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (c *imageCanvas) EncodeJPEG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.img, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *imageCanvas) Close() error {
	c.img = nil
	return nil
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// drawHLine paints row y from x0 to x1 inclusive, clipped to the image.
func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 >= b.Max.X {
		x1 = b.Max.X - 1
	}
	for x := x0; x <= x1; x++ {
		img.SetNRGBA(x, y, c)
	}
}

// drawVLine paints column x from y0 to y1 inclusive, clipped to the image.
func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if y1 >= b.Max.Y {
		y1 = b.Max.Y - 1
	}
	for y := y0; y <= y1; y++ {
		img.SetNRGBA(x, y, c)
	}
}
