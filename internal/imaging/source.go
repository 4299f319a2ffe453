package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Source names where an image comes from. Exactly one field must be set.
type Source struct {
	// Path is a filesystem path to an encoded image file.
	Path string

	// Inline supplies base64 image text, typically standard input. It is
	// read to completion before decoding.
	Inline io.Reader
}

// validate enforces the exactly-one rule.
func (s Source) validate() error {
	hasPath := s.Path != ""
	hasInline := s.Inline != nil

	switch {
	case !hasPath && !hasInline:
		return ErrNoSource
	case hasPath && hasInline:
		return ErrMultipleSources
	}
	return nil
}

// readBytes returns the raw encoded image bytes from whichever field is set.
func (s Source) readBytes() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	if s.Path != "" {
		return readFile(s.Path)
	}

	text, err := io.ReadAll(s.Inline)
	if err != nil {
		return nil, fmt.Errorf("failed to read inline image data: %w", err)
	}
	return DecodeBase64(string(text))
}

// readFile reads path, reporting any open failure as ErrNotFound.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return data, nil
}

// DecodeBase64 decodes inline image text into raw image bytes.
//
// Accepted input:
//   - standard base64, padded or not
//   - whitespace anywhere, including line wrapping
//   - an optional data URL prefix such as "data:image/png;base64,"
//
// Empty input and text that is not base64 wrap ErrInvalidImage.
func DecodeBase64(text string) ([]byte, error) {
	payload := strings.Join(strings.Fields(text), "")

	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 || !strings.HasSuffix(payload[:comma], ";base64") {
			return nil, fmt.Errorf("%w: data URL is not base64 encoded", ErrInvalidImage)
		}
		payload = payload[comma+1:]
	}

	if payload == "" {
		return nil, fmt.Errorf("%w: inline payload is empty", ErrInvalidImage)
	}

	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed base64 payload: %v", ErrInvalidImage, err)
	}
	return data, nil
}
