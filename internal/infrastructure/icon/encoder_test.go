package icon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emicon/internal/domain/entity"
)

func filledSurface(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := h / 4; y < 3*h/4; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			img.Set(x, y, color.Black)
		}
	}
	return img
}

func TestEncoder_EncodesEveryExportSize(t *testing.T) {
	enc := NewEncoder()
	src := filledSurface(entity.DrawSize, entity.DrawSize)

	for _, size := range entity.IconSizes() {
		data, err := enc.Encode(context.Background(), src, size)
		require.NoError(t, err, "size %d", size)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestEncoder_PreservesTransparencyAndInk(t *testing.T) {
	data, err := NewEncoder().Encode(context.Background(), filledSurface(512, 512), 16)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	_, _, _, cornerA := img.At(0, 0).RGBA()
	assert.Zero(t, cornerA, "corner stays transparent")
	_, _, _, centerA := img.At(8, 8).RGBA()
	assert.Greater(t, centerA, uint32(0xf000), "center keeps the glyph ink")
}

func TestEncoder_CropsNonSquareSource(t *testing.T) {
	data, err := NewEncoder().Encode(context.Background(), filledSurface(300, 100), 32)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}

func TestEncoder_Deterministic(t *testing.T) {
	enc := NewEncoder()
	src := filledSurface(512, 512)

	first, err := enc.Encode(context.Background(), src, 48)
	require.NoError(t, err)
	second, err := enc.Encode(context.Background(), src, 48)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncoder_Errors(t *testing.T) {
	enc := NewEncoder()

	_, err := enc.Encode(context.Background(), filledSurface(4, 4), 0)
	assert.Error(t, err)

	_, err = enc.Encode(context.Background(), nil, 16)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enc.Encode(ctx, filledSurface(4, 4), 16)
	assert.ErrorIs(t, err, context.Canceled)
}
