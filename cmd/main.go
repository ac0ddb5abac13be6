package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"bbox-annotator/config"
	cli "bbox-annotator/internal/api"
	"bbox-annotator/internal/container"
	"bbox-annotator/internal/infrastructure/storage"
	"bbox-annotator/internal/infrastructure/vision"
)

func main() {
	cmd := cli.NewRootCommand(func(cfg *config.Config) cli.Annotator {
		// the only adapters that touch disk
		renderer := vision.NewRenderer(cfg.JPEGQuality)
		store := storage.NewDirectoryStore(cfg.OutputDir)
		return container.New(renderer, store, time.Now).AnnotationService
	})

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
