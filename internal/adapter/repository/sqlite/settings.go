package sqlite

import (
	"context"

	"gorm.io/gorm"

	settingsDomain "affiliate-hub-backend/internal/domain/settings"
	"affiliate-hub-backend/internal/store"
)

type SettingsRepository struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewSettingsRepository(db *gorm.DB, n *store.Notifier) *SettingsRepository {
	return &SettingsRepository{db: db, notifier: n}
}

func (r *SettingsRepository) Get(ctx context.Context) (*settingsDomain.Settings, error) {
	var out settingsDomain.Settings
	if err := r.db.WithContext(ctx).First(&out, settingsDomain.SingletonID).Error; err != nil {
		return nil, wrap("get settings", err)
	}
	return &out, nil
}

// Update rewrites the singleton in place. It can never insert: the row id is
// fixed and seeded at bootstrap.
func (r *SettingsRepository) Update(ctx context.Context, fixedCommission float64) error {
	err := r.db.WithContext(ctx).
		Model(&settingsDomain.Settings{ID: settingsDomain.SingletonID}).
		Update("fixed_commission", fixedCommission).Error
	if err != nil {
		return wrap("update settings", err)
	}
	r.notifier.Publish(store.Event{Table: SettingsTable, Op: store.OpUpdate, ID: settingsDomain.SingletonID})
	return nil
}

func (r *SettingsRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&settingsDomain.Settings{}).Count(&n).Error
	return n, wrap("count settings", err)
}

// EnsureDefault seeds the default row once. FirstOrCreate keyed on the fixed
// id makes reopening an initialized store a no-op, so the count stays 1 no
// matter how many times the store is opened.
func (r *SettingsRepository) EnsureDefault(ctx context.Context) error {
	row := settingsDomain.Default()
	err := r.db.WithContext(ctx).
		Where("id = ?", settingsDomain.SingletonID).
		FirstOrCreate(&row).Error
	return wrap("seed settings", err)
}
