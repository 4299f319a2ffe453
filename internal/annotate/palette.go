package annotate

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/detect-objects/internal/detection"
)

// DefaultColor is used for any class missing from the palette.
var DefaultColor = color.RGBA{255, 255, 255, 255}

// classHex is the fixed class-to-color table.
var classHex = map[detection.Class]string{
	detection.ClassToolbox:          "#1E90FF",
	detection.ClassOxygenTank:       "#90FF1E",
	detection.ClassFireExtinguisher: "#FF1E1E",
	detection.ClassOther:            "#FFFF1E",
}

var palette = buildPalette()

func buildPalette() map[detection.Class]color.RGBA {
	p := make(map[detection.Class]color.RGBA, len(classHex))
	for class, hex := range classHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("annotate: bad palette color %q for %s: %v", hex, class, err))
		}
		r, g, b := c.RGB255()
		p[class] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p
}

// ColorFor returns the outline and label color for class.
func ColorFor(class detection.Class) color.RGBA {
	if c, ok := palette[class]; ok {
		return c
	}
	return DefaultColor
}

// textColorOn picks black or white text for a label background, whichever
// contrasts more with the background's CIE L* lightness.
func textColorOn(bg color.RGBA) color.RGBA {
	c, _ := colorful.MakeColor(bg)
	l, _, _ := c.Lab()
	if l > 0.5 {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
