// Package images validates uploaded pictures and derives the thumbnail
// variant stored alongside tour main images.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Decode parses an uploaded blob and reports its format. Non-image payloads
// are rejected here, before anything reaches object storage.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("unsupported image payload: %w", err)
	}
	return img, format, nil
}

// Thumbnail scales the image down to fit within width x height, preserving
// aspect ratio, and returns it JPEG-encoded.
func Thumbnail(img image.Image, width, height int) ([]byte, error) {
	thumb := imaging.Thumbnail(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
