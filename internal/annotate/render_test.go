package annotate

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/detect-objects/internal/detection"
)

var gray = color.RGBA{128, 128, 128, 255}

// createInMemoryImage creates an RGBA image filled with a single color.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func toolboxAt(x, y, w, h int) detection.Detection {
	return detection.Detection{
		ClassName:  detection.ClassToolbox,
		Confidence: 0.8,
		Box:        detection.Box{X: x, Y: y, Width: w, Height: h},
	}
}

func rgbaAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRender_Outline(t *testing.T) {
	src := createInMemoryImage(200, 200, gray)
	out, err := NewRenderer(Options{}).Render(src, []detection.Detection{toolboxAt(50, 60, 40, 30)})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := ColorFor(detection.ClassToolbox)
	edges := []image.Point{
		{50, 75}, // left
		{51, 75},
		{89, 75}, // right
		{70, 60}, // top
		{70, 89}, // bottom
	}
	for _, p := range edges {
		if got := rgbaAt(t, out, p.X, p.Y); got != want {
			t.Errorf("edge pixel %v: got %v, want %v", p, got, want)
		}
	}

	if got := rgbaAt(t, out, 70, 75); got != gray {
		t.Errorf("interior pixel: got %v, want %v", got, gray)
	}
	if got := rgbaAt(t, out, 95, 75); got != gray {
		t.Errorf("pixel right of box: got %v, want %v", got, gray)
	}
}

func TestRender_Label(t *testing.T) {
	src := createInMemoryImage(200, 200, gray)
	r := NewRenderer(Options{})
	det := toolboxAt(50, 60, 40, 30)

	out, err := r.Render(src, []detection.Detection{det})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	label := r.labelBounds(image.Pt(50, 60), "Toolbox: 0.80")
	// 13 glyphs of the 7px face plus margin; ascent 11 plus padding.
	if label != image.Rect(50, 39, 146, 60) {
		t.Fatalf("label bounds: got %v, want (50,39)-(146,60)", label)
	}

	want := ColorFor(detection.ClassToolbox)
	if got := rgbaAt(t, out, 143, 50); got != want {
		t.Errorf("label background: got %v, want %v", got, want)
	}

	// Text is drawn in black over the light blue background.
	hasText := false
	for y := label.Min.Y; y < label.Max.Y && !hasText; y++ {
		for x := label.Min.X; x < label.Max.X; x++ {
			if rgbaAt(t, out, x, y) == (color.RGBA{0, 0, 0, 255}) {
				hasText = true
				break
			}
		}
	}
	if !hasText {
		t.Error("label should contain black text pixels")
	}

	if got := rgbaAt(t, out, 150, 50); got != gray {
		t.Errorf("pixel right of label: got %v, want %v", got, gray)
	}
}

func TestRender_DoesNotModifyInput(t *testing.T) {
	src := createInMemoryImage(100, 100, gray)
	before := append([]uint8(nil), src.Pix...)

	out, err := NewRenderer(Options{}).Render(src, []detection.Detection{toolboxAt(10, 30, 50, 50)})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !bytes.Equal(src.Pix, before) {
		t.Error("Render modified the source image")
	}
	if out.(*image.RGBA) == src {
		t.Error("Render returned the source image instead of a copy")
	}
}

func TestRender_NoDetections(t *testing.T) {
	src := createInMemoryImage(40, 30, gray)

	out, err := NewRenderer(Options{}).Render(src, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rgba := out.(*image.RGBA)
	if rgba == src {
		t.Error("Render returned the source image instead of a copy")
	}
	if !bytes.Equal(rgba.Pix, src.Pix) {
		t.Error("copy without detections should match the source")
	}
}

func TestRender_Deterministic(t *testing.T) {
	src := createInMemoryImage(300, 200, gray)
	dets := []detection.Detection{
		toolboxAt(20, 40, 60, 50),
		{ClassName: detection.ClassFireExtinguisher, Confidence: 0.91, Box: detection.Box{X: 100, Y: 80, Width: 70, Height: 90}},
		{ClassName: detection.ClassOther, Confidence: 0.66, Box: detection.Box{X: 150, Y: 10, Width: 40, Height: 40}},
	}

	r := NewRenderer(Options{})
	a, _ := r.Render(src, dets)
	b, _ := r.Render(src, dets)

	if !bytes.Equal(a.(*image.RGBA).Pix, b.(*image.RGBA).Pix) {
		t.Error("identical inputs rendered differently")
	}
}

func TestRender_UnknownClassUsesDefault(t *testing.T) {
	src := createInMemoryImage(100, 100, gray)
	det := detection.Detection{ClassName: "Ladder", Confidence: 0.5, Box: detection.Box{X: 10, Y: 40, Width: 30, Height: 30}}

	out, err := NewRenderer(Options{}).Render(src, []detection.Detection{det})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := rgbaAt(t, out, 10, 55); got != DefaultColor {
		t.Errorf("edge pixel: got %v, want default %v", got, DefaultColor)
	}
}

func TestRender_BoxAtTopEdge(t *testing.T) {
	src := createInMemoryImage(60, 60, gray)

	// The label sits entirely above the canvas; drawing must clip, not panic.
	out, err := NewRenderer(Options{}).Render(src, []detection.Detection{toolboxAt(0, 0, 59, 59)})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := rgbaAt(t, out, 0, 30); got != ColorFor(detection.ClassToolbox) {
		t.Errorf("left edge: got %v", got)
	}
}

func TestRender_HideLabels(t *testing.T) {
	src := createInMemoryImage(200, 200, gray)

	out, err := NewRenderer(Options{HideLabels: true}).Render(src, []detection.Detection{toolboxAt(50, 60, 40, 30)})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := rgbaAt(t, out, 52, 50); got != gray {
		t.Errorf("label area: got %v, want untouched %v", got, gray)
	}
	if got := rgbaAt(t, out, 50, 75); got != ColorFor(detection.ClassToolbox) {
		t.Errorf("outline should still be drawn, got %v", got)
	}
}

func TestRender_HideConfidence(t *testing.T) {
	src := createInMemoryImage(200, 200, gray)
	r := NewRenderer(Options{HideConfidence: true})

	if got := r.labelText(toolboxAt(0, 0, 1, 1)); got != "Toolbox" {
		t.Errorf("labelText: got %q, want %q", got, "Toolbox")
	}

	out, err := r.Render(src, []detection.Detection{toolboxAt(50, 60, 40, 30)})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// "Toolbox" is 49px wide, so the full-label area past it stays untouched.
	if got := rgbaAt(t, out, 143, 50); got != gray {
		t.Errorf("pixel past short label: got %v, want %v", got, gray)
	}
}

func TestLabelText(t *testing.T) {
	r := NewRenderer(Options{})

	tests := []struct {
		det  detection.Detection
		want string
	}{
		{detection.Detection{ClassName: detection.ClassToolbox, Confidence: 0.8}, "Toolbox: 0.80"},
		{detection.Detection{ClassName: detection.ClassOxygenTank, Confidence: 0.876}, "Oxygen Tank: 0.88"},
		{detection.Detection{ClassName: detection.ClassFireExtinguisher, Confidence: 0.9649}, "Fire Extinguisher: 0.96"},
	}

	for _, tt := range tests {
		if got := r.labelText(tt.det); got != tt.want {
			t.Errorf("labelText: got %q, want %q", got, tt.want)
		}
	}
}
