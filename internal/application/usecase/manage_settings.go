package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/emicon/internal/domain/repository"
	"github.com/bnema/emicon/internal/domain/validation"
	"github.com/bnema/emicon/internal/logging"
)

// ManageSettingsUseCase reads and writes persisted user settings.
type ManageSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewManageSettingsUseCase creates a new settings use case.
func NewManageSettingsUseCase(settingsRepo repository.SettingsRepository) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{settingsRepo: settingsRepo}
}

// EmojiVersion returns the stored emojiVersion value and whether it is set.
func (uc *ManageSettingsUseCase) EmojiVersion(ctx context.Context) (string, bool, error) {
	value, ok, err := uc.settingsRepo.Get(ctx, repository.SettingEmojiVersion)
	if err != nil {
		return "", false, fmt.Errorf("failed to read emoji version: %w", err)
	}
	return value, ok, nil
}

// SetEmojiVersion persists a new ceiling. The value must be a number.
func (uc *ManageSettingsUseCase) SetEmojiVersion(ctx context.Context, value string) error {
	if _, ok := validation.ParseEmojiVersion(value); !ok {
		return fmt.Errorf("emoji version %q is not a number", value)
	}
	if err := uc.settingsRepo.Set(ctx, repository.SettingEmojiVersion, value); err != nil {
		return fmt.Errorf("failed to save emoji version: %w", err)
	}
	logging.FromContext(ctx).Info().Str("emoji_version", value).Msg("emoji version saved")
	return nil
}

// ClearEmojiVersion removes the ceiling so every entry is visible.
func (uc *ManageSettingsUseCase) ClearEmojiVersion(ctx context.Context) error {
	if err := uc.settingsRepo.Delete(ctx, repository.SettingEmojiVersion); err != nil {
		return fmt.Errorf("failed to clear emoji version: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("emoji version cleared")
	return nil
}
