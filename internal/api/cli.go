package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bbox-annotator/config"
	"bbox-annotator/internal/domain/entity"
	"bbox-annotator/internal/logging"
)

const usageLine = "Usage: bbox-annotator <image_path> <bbox_string>"

// ErrUsage is returned when fewer than two positional arguments are given.
var ErrUsage = errors.New("missing arguments")

// Annotator is the pipeline the command drives.
type Annotator interface {
	Annotate(ctx context.Context, imagePath, bboxText string) (string, error)
}

// BuildFunc wires an Annotator from the resolved configuration.
type BuildFunc func(cfg *config.Config) Annotator

type flags struct {
	outputDir string
	quality   int
	logLevel  string
	envFile   string
}

// NewRootCommand creates the one-shot annotate command. The JSON result is
// written to the command's stdout; logs go to its stderr.
func NewRootCommand(build BuildFunc) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "bbox-annotator [flags] <image_path> <bbox_string>",
		Short: "Draw <bbox> boxes from model output onto an image",
		Long: `bbox-annotator draws every <bbox>x1 y1 x2 y2</bbox> tag found in the
given text onto the image, using coordinates normalized to 0-1000, and writes
the result as JPEG named {YYYYMMDD_HHMMSS}_{original file name} into the
output directory.

Exactly one JSON line is printed on stdout:
  {"success":true,"output_path":"20240101_120000_drone.png"}
  {"success":false,"error":"..."}

Examples:
  bbox-annotator ./drone.png "<bbox>100 200 300 400</bbox>"
  bbox-annotator --output-dir /srv/upload/data photo.jpg "$MODEL_OUTPUT"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return ErrUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := run(cmd, f, build, args[0], args[1])
			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Directory the annotated image is written to (default: ../../upload/data next to the binary)")
	cmd.Flags().IntVarP(&f.quality, "quality", "q", config.DefaultJPEGQuality, "JPEG quality of the output image (1-100)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level on stderr: debug, info, warn, error, off")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Load environment variables from this file instead of ./.env")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// run resolves configuration and executes the pipeline. Every failure ends
// up in the returned Result.
func run(cmd *cobra.Command, f flags, build BuildFunc, imagePath, bboxText string) entity.Result {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return entity.NewFailure(err)
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if cmd.Flags().Changed("quality") {
		cfg.JPEGQuality = f.quality
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return entity.NewFailure(err)
	}

	logging.Init(cfg.LogLevel, cmd.ErrOrStderr())
	if err := cfg.DotEnvError(); err != nil {
		log.Debug().Err(err).Msg("ignored ./.env")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	name, err := build(cfg).Annotate(ctx, imagePath, bboxText)
	if err != nil {
		log.Warn().Err(err).Str("path", imagePath).Msg("annotation failed")
		return entity.NewFailure(err)
	}
	return entity.NewSuccess(name)
}

// writeResult prints the result as a single JSON line without escaping
// non-ASCII or HTML characters.
func writeResult(w io.Writer, result entity.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
