package port

import (
	"context"

	"github.com/bnema/emicon/internal/domain/entity"
)

// Archiver packs exported images into a single archive, one entry per image
// under its FileName, in input order.
type Archiver interface {
	Build(ctx context.Context, images []entity.ExportedImage) ([]byte, error)
}
