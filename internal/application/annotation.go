package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"bbox-annotator/internal/domain/entity"
	"bbox-annotator/internal/domain/port"
)

const (
	// TimestampLayout prefixes every output file name.
	TimestampLayout = "20060102_150405"

	outlineThickness = 2
	labelOffsetY     = 10
)

// AnnotationService draws model-supplied bounding boxes onto images.
type AnnotationService struct {
	renderer port.Renderer
	store    port.OutputStore
	now      func() time.Time
}

// NewAnnotationService creates the service. A nil clock falls back to time.Now.
func NewAnnotationService(renderer port.Renderer, store port.OutputStore, now func() time.Time) *AnnotationService {
	if now == nil {
		now = time.Now
	}
	return &AnnotationService{
		renderer: renderer,
		store:    store,
		now:      now,
	}
}

// Annotate draws every <bbox> found in bboxText onto the image at imagePath
// and stores the JPEG result. It returns the output file name, not a path.
func (s *AnnotationService) Annotate(ctx context.Context, imagePath, bboxText string) (string, error) {
	if s.renderer == nil || s.store == nil {
		return "", errors.New("annotator is not configured")
	}

	// Read bytes first so decoding never depends on how the path is encoded.
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", entity.NewDecodeError(imagePath, err)
	}

	canvas, err := s.renderer.Decode(data)
	if err != nil {
		return "", entity.NewDecodeError(imagePath, err)
	}
	defer canvas.Close()

	width, height := canvas.Size()

	boxes, err := entity.ParseBoxes(bboxText)
	if err != nil {
		return "", entity.NewParseError(err)
	}

	log.Debug().
		Str("path", imagePath).
		Int("width", width).
		Int("height", height).
		Int("boxes", len(boxes)).
		Msg("annotating image")

	for i, box := range boxes {
		px := box.Rescale(width, height)
		c := entity.ColorFor(i)
		canvas.DrawBox(px, c, outlineThickness)
		canvas.DrawLabel(entity.Label(i), px.XMin, px.YMin-labelOffsetY, c)
	}

	name := OutputName(s.now(), imagePath)

	encoded, err := canvas.EncodeJPEG()
	if err != nil {
		return "", entity.NewWriteError("failed to encode image", err)
	}

	if err := s.store.Save(ctx, name, encoded); err != nil {
		return "", entity.NewWriteError("failed to write image", err)
	}

	log.Info().Str("output", name).Int("boxes", len(boxes)).Msg("annotated image saved")
	return name, nil
}

// OutputName builds "{YYYYMMDD_HHMMSS}_{basename}" for the source image.
// The source extension is kept even though the content is always JPEG.
func OutputName(t time.Time, imagePath string) string {
	return t.Format(TimestampLayout) + "_" + filepath.Base(imagePath)
}
