package services

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 180, G: 60, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestPrepareImageBoundsLongerEdge(t *testing.T) {
	prepared, err := PrepareImage(pngFixture(1000, 600), 512)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(prepared.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 512, decoded.Bounds().Dx())
	assert.LessOrEqual(t, decoded.Bounds().Dy(), 512)

	assert.Equal(t, "image/jpeg", prepared.MIMEType)
	assert.True(t, strings.HasPrefix(prepared.DataURI, "data:image/jpeg;base64,"))
}

func TestPrepareImageDoesNotUpscale(t *testing.T) {
	prepared, err := PrepareImage(pngFixture(100, 80), 512)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(prepared.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestPrepareImageRejectsUndecodableBytes(t *testing.T) {
	_, err := PrepareImage([]byte("definitely not an image"), 512)
	assert.Error(t, err)
}

func TestPrepareImageZeroEdgeUsesDefault(t *testing.T) {
	prepared, err := PrepareImage(pngFixture(2000, 2000), 0)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(prepared.Data))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxImageEdge, decoded.Bounds().Dx())
}
