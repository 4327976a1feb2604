package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

// SettingsRepository reads operator settings (admin PIN, pool size) from
// the admin_settings table
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM admin_settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", domain.ErrSettingNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", ErrMsgQuerySetting, key, err)
	}
	return value, nil
}

// GetAdminPIN returns the stored administrator PIN for manual triggers
func (r *SettingsRepository) GetAdminPIN(ctx context.Context) (string, error) {
	return r.get(ctx, SettingKeyAdminPIN)
}

// GetRewardPoolAmount returns the configured pool size in smallest units
func (r *SettingsRepository) GetRewardPoolAmount(ctx context.Context) (int64, error) {
	raw, err := r.get(ctx, SettingKeyRewardPool)
	if err != nil {
		return 0, err
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s setting %q: %w", SettingKeyRewardPool, raw, err)
	}
	return amount, nil
}
