package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultJPEGQuality is the JPEG quality used when a codec is built with an
// out-of-range value.
const DefaultJPEGQuality = 95

// Codec decodes image sources and encodes images as base64 JPEG text.
type Codec struct {
	quality int
}

// NewCodec creates a codec that encodes at the given JPEG quality (1-100).
// Out-of-range values fall back to DefaultJPEGQuality.
func NewCodec(quality int) *Codec {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Codec{quality: quality}
}

// Quality returns the JPEG quality used by Encode.
func (c *Codec) Quality() int {
	return c.quality
}

// Decode resolves src and decodes it into an RGBA raster.
//
// The source is read to completion and released before Decode returns.
//
// # Errors
//
//   - ErrNoSource / ErrMultipleSources when src does not name exactly one input
//   - ErrNotFound when src.Path cannot be opened or read
//   - ErrInvalidImage when the payload or image bytes cannot be parsed
func (c *Codec) Decode(src Source) (*image.RGBA, error) {
	data, err := src.readBytes()
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return clone.AsRGBA(img), nil
}

// Encode serializes img as a JPEG and returns it as standard base64 text.
func (c *Codec) Encode(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
