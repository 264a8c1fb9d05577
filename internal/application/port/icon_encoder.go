package port

import (
	"context"
	"image"
)

// IconEncoder rescales a source surface to a size×size square and encodes
// it as PNG.
type IconEncoder interface {
	Encode(ctx context.Context, src image.Image, size int) ([]byte, error)
}
