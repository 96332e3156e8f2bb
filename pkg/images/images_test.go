package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, format, err := Decode(testPNG(t, 80, 60))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestDecodeRejectsNonImage(t *testing.T) {
	_, _, err := Decode([]byte("<?php echo 'not an image'; ?>"))
	assert.Error(t, err)
}

func TestThumbnailBounds(t *testing.T) {
	tests := []struct {
		name           string
		srcW, srcH     int
		thumbW, thumbH int
	}{
		{name: "landscape source", srcW: 800, srcH: 600, thumbW: 400, thumbH: 300},
		{name: "portrait source", srcW: 300, srcH: 500, thumbW: 400, thumbH: 300},
		{name: "small source upscales", srcW: 100, srcH: 80, thumbW: 400, thumbH: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _, err := Decode(testPNG(t, tt.srcW, tt.srcH))
			require.NoError(t, err)

			data, err := Thumbnail(img, tt.thumbW, tt.thumbH)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			thumb, format, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, tt.thumbW, thumb.Bounds().Dx())
			assert.Equal(t, tt.thumbH, thumb.Bounds().Dy())
		})
	}
}
