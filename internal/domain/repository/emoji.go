package repository

import (
	"context"

	"github.com/bnema/emicon/internal/domain/entity"
)

// EmojiRepository provides the emoji metadata dataset.
type EmojiRepository interface {
	// FetchAll retrieves every dataset entry in dataset order.
	FetchAll(ctx context.Context) ([]entity.Emoji, error)
}
