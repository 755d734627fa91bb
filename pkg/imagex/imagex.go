// Package imagex bounds photos before they are persisted. Journal images are
// display material, not archival originals, so everything is re-encoded as
// quality-compressed JPEG with the longest edge clamped.
package imagex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

const (
	// MaxEdge is the longest allowed dimension of a stored photo.
	MaxEdge = 1024

	jpegQuality = 80
)

// ErrImageDecode marks input that could not be decoded as an image.
var ErrImageDecode = errors.New("imagex: unreadable image")

// Downsize decodes r (JPEG, PNG, GIF, TIFF, BMP), scales it proportionally
// so neither dimension exceeds MaxEdge, and re-encodes as JPEG. Images
// already inside the bound are re-encoded without scaling.
func Downsize(r io.Reader) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	img = clamp(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("imagex: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func clamp(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= MaxEdge && b.Dy() <= MaxEdge {
		return img
	}
	return imaging.Fit(img, MaxEdge, MaxEdge, imaging.Lanczos)
}

// Bounds reports the pixel dimensions of an encoded image.
func Bounds(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return cfg.Width, cfg.Height, nil
}
