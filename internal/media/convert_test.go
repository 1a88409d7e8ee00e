package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestToWebp(t *testing.T) {
	out, err := ToWebp(pngFixture(t, 64, 48))

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestToWebp_ResizesWideImages(t *testing.T) {
	out, err := ToWebp(pngFixture(t, maxWidth*2, 100))

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestToWebp_RejectsGarbage(t *testing.T) {
	_, err := ToWebp(bytes.NewBufferString("not an image"))
	assert.Error(t, err)
}
