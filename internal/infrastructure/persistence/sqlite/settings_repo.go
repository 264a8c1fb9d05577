package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/domain/repository"
	"github.com/bnema/emicon/internal/logging"
)

const (
	getSettingSQL    = `SELECT value FROM settings WHERE key = ?`
	upsertSettingSQL = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSettingSQL = `DELETE FROM settings WHERE key = ?`
)

type settingsRepo struct {
	provider port.DatabaseProvider
}

// NewSettingsRepository creates a settings repository. The database is
// opened through provider on first use.
func NewSettingsRepository(provider port.DatabaseProvider) repository.SettingsRepository {
	return &settingsRepo{provider: provider}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, getSettingSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("setting read")
	return value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, upsertSettingSQL, key, value); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("setting saved")
	return nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, deleteSettingSQL, key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
