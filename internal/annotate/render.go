package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/detect-objects/internal/detection"
)

const (
	// boxThickness is the outline width in pixels.
	boxThickness = 2

	// labelPadding is the vertical space the label background adds above
	// the text, and labelBaseline how far above the box top the text sits.
	labelPadding  = 10
	labelBaseline = 5
	labelMarginX  = 5
)

// Options controls what the renderer draws besides the box outlines.
type Options struct {
	// HideLabels suppresses the label background and text.
	HideLabels bool

	// HideConfidence drops the confidence score from label text.
	HideConfidence bool
}

// Renderer draws detections onto copies of images.
type Renderer struct {
	opts Options
	face font.Face
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		opts: opts,
		face: basicfont.Face7x13,
	}
}

// Render returns a copy of img with every detection drawn in order.
// Later detections paint over earlier ones where they overlap.
// The error is always nil.
func (r *Renderer) Render(img image.Image, detections []detection.Detection) (image.Image, error) {
	out := clone.AsRGBA(img)

	for _, d := range detections {
		c := ColorFor(d.ClassName)
		box := d.Box.Rect().Add(out.Bounds().Min)

		drawOutline(out, box, c, boxThickness)

		if !r.opts.HideLabels {
			r.drawLabel(out, box.Min, r.labelText(d), c)
		}
	}

	return out, nil
}

// labelText formats the label for d.
func (r *Renderer) labelText(d detection.Detection) string {
	if r.opts.HideConfidence {
		return string(d.ClassName)
	}
	return fmt.Sprintf("%s: %.2f", d.ClassName, d.Confidence)
}

// drawOutline strokes the inside of rect with a border of the given thickness.
func drawOutline(dst draw.Image, rect image.Rectangle, c color.Color, thickness int) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thickness),
		image.Rect(rect.Min.X, rect.Max.Y-thickness, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thickness, rect.Max.Y),
		image.Rect(rect.Max.X-thickness, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(rect), src, image.Point{}, draw.Src)
	}
}

// drawLabel fills a background sized to text just above anchor (the box's
// top-left corner) and writes text over it.
func (r *Renderer) drawLabel(dst draw.Image, anchor image.Point, text string, bg color.RGBA) {
	draw.Draw(dst, r.labelBounds(anchor, text), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColorOn(bg)),
		Face: r.face,
		Dot:  fixed.P(anchor.X, anchor.Y-labelBaseline),
	}
	d.DrawString(text)
}

// labelBounds returns the background rectangle for text anchored at the box's
// top-left corner: as wide as the text plus a margin, and tall enough for the
// text's ascent plus padding.
func (r *Renderer) labelBounds(anchor image.Point, text string) image.Rectangle {
	textWidth := font.MeasureString(r.face, text).Ceil()
	textHeight := r.face.Metrics().Ascent.Ceil()
	return image.Rect(
		anchor.X,
		anchor.Y-textHeight-labelPadding,
		anchor.X+textWidth+labelMarginX,
		anchor.Y,
	)
}
