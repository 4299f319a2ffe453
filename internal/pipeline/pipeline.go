package pipeline

import (
	"fmt"
	"image"
	"io"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/detect-objects/internal/detection"
	"github.com/ironsheep/detect-objects/internal/imaging"
)

// Codec converts between image sources, rasters and encoded text.
type Codec interface {
	Decode(src imaging.Source) (*image.RGBA, error)
	Encode(img image.Image) (string, error)
}

// Detector produces detections for an image.
type Detector interface {
	Detect(img image.Image, opts detection.Options) ([]detection.Detection, error)
}

// Renderer draws detections onto a copy of an image.
type Renderer interface {
	Render(img image.Image, detections []detection.Detection) (image.Image, error)
}

// Request is one detection invocation.
type Request struct {
	// Source is the image to process; exactly one of its fields must be set.
	Source imaging.Source

	// SessionID is an opaque caller token, required and echoed verbatim.
	SessionID string

	// Threshold is the minimum confidence to report, in [0, 1]. Callers
	// that want the default pass detection.DefaultThreshold.
	Threshold float64

	// Classes optionally restricts the classes reported. Unknown names
	// match nothing.
	Classes []string
}

// Pipeline sequences decode, detect, render and encode.
type Pipeline struct {
	codec    Codec
	detector Detector
	renderer Renderer
	now      func() time.Time
}

// New creates a pipeline from its stages.
func New(codec Codec, detector Detector, renderer Renderer) *Pipeline {
	return &Pipeline{
		codec:    codec,
		detector: detector,
		renderer: renderer,
		now:      time.Now,
	}
}

// Process runs req through every stage and returns the success response.
// On failure the remaining stages are skipped and the error is an *Error.
func (p *Pipeline) Process(req Request) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, classify(err)
	}

	img, err := p.codec.Decode(req.Source)
	if err != nil {
		return nil, classify(err)
	}
	log.Debug().
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("Image decoded")

	start := p.now()

	detections, err := p.detector.Detect(img, detection.Options{
		Threshold: req.Threshold,
		Classes:   req.Classes,
	})
	if err != nil {
		return nil, classify(fmt.Errorf("detection failed: %w", err))
	}
	if detections == nil {
		detections = []detection.Detection{}
	}

	rendered, err := p.renderer.Render(img, detections)
	if err != nil {
		return nil, classify(fmt.Errorf("rendering failed: %w", err))
	}

	encoded, err := p.codec.Encode(rendered)
	if err != nil {
		return nil, classify(err)
	}

	elapsed := p.now().Sub(start)

	summary := detection.Summarize(detections)
	log.Debug().
		Int("total_objects", summary.TotalObjects).
		Interface("object_counts", summary.ObjectCounts).
		Float64("avg_confidence", summary.AvgConfidence).
		Dur("elapsed", elapsed).
		Msg("Detection complete")

	return &Response{
		Detections:     detections,
		ProcessedImage: encoded,
		ProcessingTime: float64(elapsed) / float64(time.Millisecond),
		SessionID:      req.SessionID,
	}, nil
}

// Run processes req and writes exactly one JSON document to w: the response
// on success, the error form on failure. The processing error, if any, is
// returned after the document is written.
func (p *Pipeline) Run(req Request, w io.Writer) error {
	resp, err := p.Process(req)
	if err != nil {
		if werr := WriteError(w, req.SessionID, err); werr != nil {
			return classify(werr)
		}
		return err
	}

	if err := WriteResponse(w, resp); err != nil {
		return classify(err)
	}
	return nil
}

func (r Request) validate() error {
	if r.SessionID == "" {
		return ErrMissingSessionID
	}
	if math.IsNaN(r.Threshold) || r.Threshold < 0 || r.Threshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, r.Threshold)
	}
	return nil
}

// ParseClasses splits a comma-separated class list, trimming whitespace and
// dropping empty entries. An empty or blank list yields nil (no filter).
func ParseClasses(list string) []string {
	var classes []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			classes = append(classes, name)
		}
	}
	return classes
}
