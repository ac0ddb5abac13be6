package container

import (
	"time"

	app "bbox-annotator/internal/application"
	"bbox-annotator/internal/domain/port"
)

type Container struct {
	AnnotationService *app.AnnotationService
}

func New(renderer port.Renderer, store port.OutputStore, now func() time.Time) *Container {
	return &Container{
		AnnotationService: app.NewAnnotationService(renderer, store, now),
	}
}
