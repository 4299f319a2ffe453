// Package imaging converts between in-memory raster images and the portable
// encodings the detector accepts and returns.
//
// Images enter as a file path or as base64 text read from a stream and leave
// as base64-encoded JPEG. Decoded images are always normalized to *image.RGBA
// with (0,0) at the top-left corner, X increasing rightward and Y increasing
// downward.
//
// # Input Formats
//
// Decoding supports JPEG, PNG, GIF, BMP, TIFF and WebP. EXIF orientation tags
// are applied, so a rotated phone photo decodes upright. Inline payloads may
// carry a browser data URL prefix ("data:image/jpeg;base64,") and may be
// wrapped across lines; padding is optional.
//
// # Output Format
//
// Encode produces standard (padded) base64 of a JPEG at the codec's quality.
// JPEG is lossy: a decode of the encoded text has the same dimensions as the
// source but pixel values may drift slightly.
//
// # Error Handling
//
// Failures wrap one of the package's sentinel errors so callers can classify
// them with errors.Is:
//   - ErrNoSource: neither a path nor inline data was supplied
//   - ErrMultipleSources: both were supplied
//   - ErrNotFound: the path does not name a readable file
//   - ErrInvalidImage: the payload is malformed or the bytes are not an image
//
// Any other error (for example a failing input stream) is returned unwrapped.
//
// # Thread Safety
//
// A Codec holds only its configuration and may be shared between goroutines.
package imaging
