// Package icon rescales rendered surfaces into PNG icons.
package icon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/bnema/emicon/internal/application/port"
)

// Encoder implements port.IconEncoder with CatmullRom resampling.
type Encoder struct {
	scaler draw.Scaler
	png    png.Encoder
}

// NewEncoder creates an encoder using CatmullRom interpolation and the
// default PNG compression level.
func NewEncoder() *Encoder {
	return &Encoder{
		scaler: draw.CatmullRom,
		png:    png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// Encode center-crops src to a square, scales it to size×size and returns
// the PNG bytes.
func (e *Encoder) Encode(ctx context.Context, src image.Image, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	if src == nil {
		return nil, fmt.Errorf("no source image")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cropped := cropSquare(src)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	e.scaler.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := e.png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// cropSquare returns the centered square region of src.
func cropSquare(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == h {
		return src
	}

	var rect image.Rectangle
	if w > h {
		off := (w - h) / 2
		rect = image.Rect(b.Min.X+off, b.Min.Y, b.Min.X+off+h, b.Max.Y)
	} else {
		off := (h - w) / 2
		rect = image.Rect(b.Min.X, b.Min.Y+off, b.Max.X, b.Min.Y+off+w)
	}

	if sub, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect)
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst
}

var _ port.IconEncoder = (*Encoder)(nil)
