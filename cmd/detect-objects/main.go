package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/detect-objects/internal/annotate"
	"github.com/ironsheep/detect-objects/internal/config"
	"github.com/ironsheep/detect-objects/internal/detection"
	"github.com/ironsheep/detect-objects/internal/imaging"
	"github.com/ironsheep/detect-objects/internal/logging"
	"github.com/ironsheep/detect-objects/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// options holds the parsed command-line flags for one invocation.
type options struct {
	imagePath      string
	base64Stdin    bool
	sessionID      string
	confThreshold  float64
	classes        string
	hideLabels     bool
	hideConfidence bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status. Exactly
// one JSON document is written to stdout unless only the version or help
// text was requested; diagnostics go to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, cfgErr := config.Load()
	level := config.Default().LogLevel
	if cfgErr == nil {
		level = cfg.LogLevel
	}
	logging.Init(stderr, level)

	var (
		opts       options
		documented bool
	)

	cmd := newRootCmd(&opts, func(cmd *cobra.Command, _ []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		if !cmd.Flags().Changed("conf-threshold") {
			opts.confThreshold = cfg.ConfThreshold
		}

		log.Debug().
			Str("version", Version).
			Str("session_id", opts.sessionID).
			Bool("base64_stdin", opts.base64Stdin).
			Str("image_path", opts.imagePath).
			Float64("conf_threshold", opts.confThreshold).
			Int("jpeg_quality", cfg.JPEGQuality).
			Msg("Starting detection")

		documented = true
		return buildPipeline(cfg, opts).Run(buildRequest(opts, stdin), stdout)
	})
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !documented {
			if werr := pipeline.WriteError(stdout, opts.sessionID, err); werr != nil {
				log.Error().Err(werr).Msg("Failed to write error response")
			}
		}
		log.Error().
			Err(err).
			Str("kind", pipeline.KindOf(err).String()).
			Str("session_id", opts.sessionID).
			Msg("Detection failed")
		return 1
	}
	return 0
}

// newRootCmd builds the command with its flags bound to opts.
func newRootCmd(opts *options, runE func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect-objects",
		Short: "Detect safety equipment in an image and annotate it",
		Long: `detect-objects reads one image, reports the safety equipment found in it
(Toolbox, Oxygen Tank, Fire Extinguisher, Other), draws labelled boxes on a
copy, and prints a single JSON document to stdout with the detections, the
annotated image as base64 JPEG, the processing time and the session id.

The image comes from --image-path or, with --base64-stdin, from base64 text
on standard input. Exactly one must be given.

Examples:
  detect-objects --session-id abc --image-path ./station.jpg
  base64 -w0 station.png | detect-objects --session-id abc --base64-stdin
  detect-objects --session-id abc --image-path ./station.jpg --conf-threshold 0.8 --classes "Toolbox,Oxygen Tank"

Environment variables (also read from .env):
  DETECT_LOG_LEVEL=debug       Log level on stderr (debug, info, warn, error)
  DETECT_JPEG_QUALITY=95       Quality of the annotated JPEG (1-100)
  DETECT_CONF_THRESHOLD=0.45   Default confidence threshold`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runE,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("detect-objects %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit))

	flags := cmd.Flags()
	flags.StringVar(&opts.imagePath, "image-path", "", "Path to the image file")
	flags.BoolVar(&opts.base64Stdin, "base64-stdin", false, "Read base64 image data from standard input")
	flags.StringVar(&opts.sessionID, "session-id", "", "Session id echoed in the result (required)")
	flags.Float64Var(&opts.confThreshold, "conf-threshold", detection.DefaultThreshold, "Minimum confidence to report (0-1)")
	flags.StringVar(&opts.classes, "classes", "", "Comma-separated class names to report (default: all)")
	flags.BoolVar(&opts.hideLabels, "hide-labels", false, "Draw boxes without labels")
	flags.BoolVar(&opts.hideConfidence, "hide-confidence", false, "Omit the confidence from labels")

	return cmd
}

func buildPipeline(cfg *config.Config, opts options) *pipeline.Pipeline {
	return pipeline.New(
		imaging.NewCodec(cfg.JPEGQuality),
		detection.Deterministic{},
		annotate.NewRenderer(annotate.Options{
			HideLabels:     opts.hideLabels,
			HideConfidence: opts.hideConfidence,
		}),
	)
}

func buildRequest(opts options, stdin io.Reader) pipeline.Request {
	src := imaging.Source{Path: opts.imagePath}
	if opts.base64Stdin {
		src.Inline = stdin
	}

	return pipeline.Request{
		Source:    src,
		SessionID: opts.sessionID,
		Threshold: opts.confThreshold,
		Classes:   pipeline.ParseClasses(opts.classes),
	}
}
