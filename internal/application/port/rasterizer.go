package port

import (
	"context"
	"image"

	"github.com/bnema/emicon/internal/domain/entity"
)

// Rasterizer draws a single glyph onto a fresh entity.DrawSize square
// surface. The returned image must not be mutated by callers.
type Rasterizer interface {
	Rasterize(ctx context.Context, req entity.RenderRequest) (image.Image, error)
}
