package detection

import (
	"image"
	"math/rand/v2"
)

// DefaultThreshold is the confidence threshold used when none is supplied.
const DefaultThreshold = 0.45

const (
	minCandidates = 2
	maxCandidates = 5

	// pcgStream is the fixed second word of the PCG state. Only the content
	// seed varies between images.
	pcgStream = 0x5deece66d
)

// Box is an axis-aligned bounding box in pixel coordinates, measured from the
// image's top-left corner.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Detection is one inferred object instance.
type Detection struct {
	// ClassName is always a member of the fixed class set.
	ClassName Class `json:"class_name"`

	// Confidence is in [0, 1] and never below the threshold the detection
	// was produced with.
	Confidence float64 `json:"confidence"`

	// Box lies entirely inside the source image.
	Box Box `json:"box"`
}

// Options controls a detection pass.
type Options struct {
	// Threshold is the minimum confidence a candidate needs to be emitted.
	Threshold float64

	// Classes optionally restricts the classes that may be produced. Empty
	// means no restriction.
	Classes []string
}

// Detect derives a reproducible set of detections from img.
//
// Parameters:
//   - img: Source image. Only its pixel content and dimensions are read.
//   - opts: Confidence threshold and optional class allow-list.
//
// Returns the emitted detections in generation order. The slice is never nil,
// so it serializes as an empty JSON array when nothing is detected.
//
// # Algorithm
//
//  1. Seed a local PCG generator from ContentSeed(img)
//  2. Draw a candidate count uniformly from 2-5
//  3. For each candidate draw, in order: class, box width, box height,
//     x, y, confidence
//  4. Emit the candidate only if its confidence meets the threshold
//
// Boxes are 1/8 to 1/3 of the image in each dimension and are positioned so
// they never cross the image edge.
func Detect(img image.Image, opts Options) []Detection {
	detections := make([]Detection, 0, maxCandidates)

	pool := candidatePool(opts.Classes)
	if len(pool) == 0 {
		return detections
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return detections
	}

	rng := rand.New(rand.NewPCG(ContentSeed(img), pcgStream))

	count := minCandidates + rng.IntN(maxCandidates-minCandidates+1)
	for i := 0; i < count; i++ {
		class := pool[rng.IntN(len(pool))]

		boxWidth := span(rng, width)
		boxHeight := span(rng, height)
		x := offset(rng, width-boxWidth)
		y := offset(rng, height-boxHeight)

		lo, hi := confidenceRange(class)
		confidence := lo + rng.Float64()*(hi-lo)

		if confidence < opts.Threshold {
			continue
		}

		detections = append(detections, Detection{
			ClassName:  class,
			Confidence: confidence,
			Box: Box{
				X:      x,
				Y:      y,
				Width:  boxWidth,
				Height: boxHeight,
			},
		})
	}

	return detections
}

// span draws a box extent between 1/8 and 1/3 of size, never below one pixel
// and never above size.
func span(rng *rand.Rand, size int) int {
	lo := max(1, size/8)
	hi := max(lo+1, size/3)
	return min(size, lo+rng.IntN(hi-lo))
}

// offset draws a position in [0, room). No room pins the box to the origin.
func offset(rng *rand.Rand, room int) int {
	if room <= 0 {
		return 0
	}
	return rng.IntN(room)
}

// Deterministic adapts Detect to a method set so it can be swapped for
// another detector.
type Deterministic struct{}

// Detect runs Detect. The error is always nil.
func (Deterministic) Detect(img image.Image, opts Options) ([]Detection, error) {
	return Detect(img, opts), nil
}
