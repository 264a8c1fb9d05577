package repository

import "context"

// SettingEmojiVersion is the persisted key holding the emoji version ceiling.
const SettingEmojiVersion = "emojiVersion"

// SettingsRepository defines operations for persisted key/value settings.
type SettingsRepository interface {
	// Get retrieves a setting value.
	// Returns found=false if the key was never set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set saves or updates a setting.
	Set(ctx context.Context, key, value string) error

	// Delete removes a setting.
	Delete(ctx context.Context, key string) error
}
