package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/repository"
	"github.com/bnema/emicon/internal/domain/search"
	"github.com/bnema/emicon/internal/domain/validation"
	"github.com/bnema/emicon/internal/logging"
)

// LoadDatasetUseCase fetches the emoji dataset and applies the persisted
// version ceiling.
type LoadDatasetUseCase struct {
	emojiRepo    repository.EmojiRepository
	settingsRepo repository.SettingsRepository
}

// NewLoadDatasetUseCase creates a new dataset loading use case.
// settingsRepo may be nil, in which case no ceiling is read.
func NewLoadDatasetUseCase(
	emojiRepo repository.EmojiRepository,
	settingsRepo repository.SettingsRepository,
) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{
		emojiRepo:    emojiRepo,
		settingsRepo: settingsRepo,
	}
}

// LoadDatasetInput contains load parameters.
type LoadDatasetInput struct {
	// CeilingOverride replaces the persisted emojiVersion when non-empty.
	CeilingOverride string
}

// LoadDatasetOutput contains the filtered dataset.
type LoadDatasetOutput struct {
	Emojis  []entity.Emoji
	Ceiling entity.VersionCeiling
	// Total is the entry count before the ceiling was applied.
	Total int
}

// Load fetches the dataset and reads the ceiling concurrently, then keeps
// only entries admitted by the ceiling. Fetch failures wrap
// entity.ErrDatasetUnavailable.
func (uc *LoadDatasetUseCase) Load(ctx context.Context, input LoadDatasetInput) (*LoadDatasetOutput, error) {
	log := logging.FromContext(ctx)

	var (
		emojis []entity.Emoji
		raw    string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emojis, err = uc.emojiRepo.FetchAll(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", entity.ErrDatasetUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		if input.CeilingOverride != "" || uc.settingsRepo == nil {
			return nil
		}
		value, ok, err := uc.settingsRepo.Get(gctx, repository.SettingEmojiVersion)
		if err != nil {
			// An unreadable setting behaves like an unset one.
			log.Warn().Err(err).Msg("failed to read emoji version setting")
			return nil
		}
		if ok {
			raw = value
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if input.CeilingOverride != "" {
		raw = input.CeilingOverride
	}
	ceiling := ParseVersionCeiling(raw)
	filtered := search.FilterByVersion(emojis, ceiling)

	log.Info().
		Int("total", len(emojis)).
		Int("visible", len(filtered)).
		Bool("bounded", ceiling.Bounded).
		Float64("ceiling", ceiling.Max).
		Msg("emoji dataset loaded")

	return &LoadDatasetOutput{
		Emojis:  filtered,
		Ceiling: ceiling,
		Total:   len(emojis),
	}, nil
}

// ParseVersionCeiling converts a stored emojiVersion value into a ceiling.
// Anything that is not a positive finite number is unbounded.
func ParseVersionCeiling(raw string) entity.VersionCeiling {
	v, ok := validation.ParseEmojiVersion(raw)
	if !ok {
		return entity.Unbounded()
	}
	return entity.NewVersionCeiling(v)
}
