package detection

import (
	"image"
	"math"
)

// seedModulus bounds the content seed.
const seedModulus = 100000

// channelMeans returns the mean 8-bit red, green and blue values over every
// pixel of img. An empty image yields zeros.
func channelMeans(img image.Image) (r, g, b float64) {
	bounds := img.Bounds()
	total := float64(bounds.Dx() * bounds.Dy())
	if total == 0 {
		return 0, 0, 0
	}

	var sumR, sumG, sumB uint64

	// Fast path for the codec's native layout.
	if rgba, ok := img.(*image.RGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := rgba.Pix[rgba.PixOffset(bounds.Min.X, y):rgba.PixOffset(bounds.Max.X, y)]
			for i := 0; i+3 < len(row); i += 4 {
				sumR += uint64(row[i])
				sumG += uint64(row[i+1])
				sumB += uint64(row[i+2])
			}
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				cr, cg, cb, _ := img.At(x, y).RGBA()
				sumR += uint64(cr >> 8)
				sumG += uint64(cg >> 8)
				sumB += uint64(cb >> 8)
			}
		}
	}

	return float64(sumR) / total, float64(sumG) / total, float64(sumB) / total
}

// ContentSeed derives the generator seed for img from its pixel content.
//
// The seed is the sum of the per-channel means scaled by 1000, truncated and
// reduced modulo 100000. Identical pixel data always produces the same seed.
func ContentSeed(img image.Image) uint64 {
	r, g, b := channelMeans(img)
	scaled := math.Floor((r + g + b) * 1000)
	return uint64(scaled) % seedModulus
}
